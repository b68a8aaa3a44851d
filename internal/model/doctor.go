package model

// Doctor identifies a treating doctor.
type Doctor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
