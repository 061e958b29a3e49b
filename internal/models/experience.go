package models

import "github.com/uptrace/bun"

type Experience struct {
	bun.BaseModel `bun:"table:experiences"`

	ID          string `bun:"id,pk" json:"id"`
	Name        string `bun:"name,notnull" json:"name"`
	Location    string `bun:"location,notnull" json:"location"`
	Description string `bun:"description,notnull" json:"description"`
	Image       string `bun:"image,notnull" json:"image"`
	About       string `bun:"about,notnull" json:"about"`
	Price       int    `bun:"price,notnull" json:"price"`
}

type Slot struct {
	bun.BaseModel `bun:"table:slots"`

	ID           string `bun:"id,pk" json:"id"`
	ExperienceID string `bun:"experience_id,notnull" json:"experienceId"`
	Date         string `bun:"date,notnull" json:"date"`
	Time         string `bun:"time,notnull" json:"time"`
	Available    int    `bun:"available,notnull" json:"available"`
	Total        int    `bun:"total,notnull" json:"total"`
}

// ExperienceSummary is the listing-page shape: no slots, no about text.
type ExperienceSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int    `json:"price"`
}

type ExperienceWithSlots struct {
	Experience
	Slots []Slot `json:"slots"`
}

func (e Experience) Summary() ExperienceSummary {
	return ExperienceSummary{
		ID:          e.ID,
		Name:        e.Name,
		Location:    e.Location,
		Description: e.Description,
		Image:       e.Image,
		Price:       e.Price,
	}
}
