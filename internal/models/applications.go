package models

import (
	"time"
)

type Gender string

const (
	GenderUnspecified    Gender = ""
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderNonBinary      Gender = "nonBinary"
	GenderPreferNotToSay Gender = "preferNotToSay"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderUnspecified, GenderMale, GenderFemale, GenderNonBinary, GenderPreferNotToSay:
		return true
	}
	return false
}

type VeteranStatus string

const (
	VeteranUnspecified    VeteranStatus = ""
	VeteranYes            VeteranStatus = "veteran"
	VeteranNo             VeteranStatus = "nonVeteran"
	VeteranPreferNotToSay VeteranStatus = "preferNotToSay"
)

func (v VeteranStatus) Valid() bool {
	switch v {
	case VeteranUnspecified, VeteranYes, VeteranNo, VeteranPreferNotToSay:
		return true
	}
	return false
}

type CoverLetter struct {
	Achievements string `json:"achievements" db:"achievements"`
	Motivation   string `json:"motivation" db:"motivation"`
}

type EqualOpportunity struct {
	Gender        Gender        `json:"gender" db:"gender"`
	Ethnicity     string        `json:"ethnicity" db:"ethnicity"`
	VeteranStatus VeteranStatus `json:"veteran_status" db:"veteran_status"`
}

type Application struct {
	ID        string `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Email     string `json:"email" db:"email"`
	Phone     string `json:"phone" db:"phone"`
	Address   string `json:"address" db:"address"`

	CoverLetter      `json:"cover_letter"`
	EqualOpportunity `json:"equal_opportunity"`

	ResumeKey         string    `json:"-" db:"resume_key"`
	ResumeFilename    string    `json:"resume_filename" db:"resume_filename"`
	ResumeContentType string    `json:"resume_content_type" db:"resume_content_type"`
	ResumeSize        int64     `json:"resume_size" db:"resume_size"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

type SubmitApplicationRequest struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	CoverLetter      CoverLetter
	EqualOpportunity EqualOpportunity

	Resume            []byte
	ResumeFilename    string
	ResumeContentType string
}

// ResumeFile is a stored resume as submitted with an application.
type ResumeFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
