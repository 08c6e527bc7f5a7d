package permissions

func Parse(raw []byte) (*PermissionData, error) {
	return parse(raw)
}
