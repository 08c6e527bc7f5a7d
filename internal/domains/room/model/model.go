package model

import (
	"fmt"
	"petstay/shared/model"
)

const (
	TableName   = "rooms"
	EntityName  = "room"
	CachePrefix = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldPetType    = "pet_type"
	FieldOccupied   = "occupied"
	FieldOccupiedBy = "occupied_by"
)

// Room is a physical unit reserved for one pet category. OccupiedBy holds the id of the
// checked-in booking while Occupied is true and is empty otherwise.
type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	PetType    string `db:"pet_type"`
	Occupied   bool   `db:"occupied"`
	OccupiedBy string `db:"occupied_by"`
	model.Metadata
}

// Label renders a room number from its category prefix and sequence, e.g. D101.
func Label(prefix string, number int) string {
	return fmt.Sprintf("%s%d", prefix, number)
}
