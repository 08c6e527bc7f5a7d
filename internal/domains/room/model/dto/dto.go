package dto

import (
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/internal/domains/room/model"
	"petstay/shared/constant"
	"petstay/shared/timezone"
)

type RoomResponse struct {
	ID          string `json:"id"`
	RoomNumber  string `json:"room_number"`
	PetType     string `json:"pet_type"`
	Occupied    bool   `json:"occupied"`
	OccupiedBy  string `json:"occupied_by,omitempty"`
	LastUpdated string `json:"last_updated"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.RoomNumber = room.RoomNumber
	r.PetType = room.PetType
	r.Occupied = room.Occupied
	r.OccupiedBy = room.OccupiedBy
	r.LastUpdated = timezone.Format(room.ModifiedAt, constant.DateFormat)
}

type Availability struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}

type AvailabilityResponse struct {
	Dog   Availability   `json:"dog"`
	Cat   Availability   `json:"cat"`
	Rooms []RoomResponse `json:"rooms"`
}

// FromModels tallies rooms per pet type. Rooms of any other type are listed but not counted.
func (r *AvailabilityResponse) FromModels(rooms []model.Room) {
	r.Rooms = make([]RoomResponse, len(rooms))

	for i, room := range rooms {
		r.Rooms[i].FromModel(room)

		var tally *Availability

		switch room.PetType {
		case string(bookingModel.CategoryDog):
			tally = &r.Dog
		case string(bookingModel.CategoryCat):
			tally = &r.Cat
		default:
			continue
		}

		tally.Total++

		if !room.Occupied {
			tally.Available++
		}
	}
}

type SeedResponse struct {
	Created int `json:"created"`
	Total   int `json:"total"`
}
