package dto

// MetricBookingUpdate tags snapshots pushed to the admin dashboard channel.
const MetricBookingUpdate = "bookingUpdate"

type Occupancy struct {
	Occupied int `json:"occupied"`
	Total    int `json:"total"`
}

type Snapshot struct {
	CurrentGuests     int                  `json:"current_guests"`
	AvailableRooms    int                  `json:"available_rooms"`
	Occupancy         map[string]Occupancy `json:"occupancy"`
	PetSpecies        map[string]int       `json:"pet_species"`
	BookingTrendPoint int                  `json:"booking_trend_point"`
	ComputedAt        string               `json:"computed_at"`
}

// Telemetry is the message published on the stats channel.
type Telemetry struct {
	Metric string   `json:"metric"`
	Value  Snapshot `json:"value"`
}

type TrendPoint struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}
