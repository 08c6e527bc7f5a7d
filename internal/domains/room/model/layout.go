package model

import (
	"petstay/config"
	bookingModel "petstay/internal/domains/booking/model"
	gModel "petstay/shared/model"
	"petstay/shared/timezone"

	"github.com/google/uuid"
)

// Layout describes one block of consecutively numbered rooms for a pet category.
type Layout struct {
	PetType     string
	Prefix      string
	FirstNumber int
	Count       int
}

// Layouts returns the configured default inventory, dogs first.
func Layouts(cfg *config.Config) []Layout {
	return []Layout{
		{
			PetType:     string(bookingModel.CategoryDog),
			Prefix:      cfg.Rooms.Dog.Prefix,
			FirstNumber: cfg.Rooms.Dog.FirstNumber,
			Count:       cfg.Rooms.Dog.Count,
		},
		{
			PetType:     string(bookingModel.CategoryCat),
			Prefix:      cfg.Rooms.Cat.Prefix,
			FirstNumber: cfg.Rooms.Cat.FirstNumber,
			Count:       cfg.Rooms.Cat.Count,
		},
	}
}

// Inventory expands layouts into unoccupied rooms.
func Inventory(layouts []Layout, user string) []Room {
	now := timezone.Now()
	rooms := []Room{}

	for _, layout := range layouts {
		for i := range layout.Count {
			rooms = append(rooms, Room{
				ID:         uuid.NewString(),
				RoomNumber: Label(layout.Prefix, layout.FirstNumber+i),
				PetType:    layout.PetType,
				Metadata: gModel.Metadata{
					CreatedAt:  now,
					ModifiedAt: now,
					CreatedBy:  user,
					ModifiedBy: user,
				},
			})
		}
	}

	return rooms
}
