package domain

import (
	"time"
)

// RecordSource tags whether a sacrament was celebrated at this parish or
// elsewhere. External records carry an uploaded certificate instead of the
// full set of structured fields.
type RecordSource string

const (
	SourceInternal RecordSource = "INTERNAL"
	SourceExternal RecordSource = "EXTERNAL"
)

type PartyRole string

const (
	RoleGroom PartyRole = "GROOM"
	RoleBride PartyRole = "BRIDE"
)

type OrderType string

const (
	OrderDeacon OrderType = "DEACON"
	OrderPriest OrderType = "PRIEST"
)

type Diocese struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Parish struct {
	ID          int64  `json:"id"`
	ParishName  string `json:"parishName"`
	DioceseID   int64  `json:"dioceseId"`
	Description string `json:"description,omitempty"`
}

// Baptism is the root of the sacrament chain. External baptisms keep unknown
// fields empty in storage; presentation substitutes the sentinel values.
type Baptism struct {
	ID                int64        `json:"id"`
	ParishID          int64        `json:"parishId"`
	Source            RecordSource `json:"source"`
	BaptismName       string       `json:"baptismName"`
	OtherNames        string       `json:"otherNames,omitempty"`
	Surname           string       `json:"surname"`
	Gender            string       `json:"gender,omitempty"`
	DateOfBirth       string       `json:"dateOfBirth,omitempty"`
	FathersName       string       `json:"fathersName,omitempty"`
	MothersName       string       `json:"mothersName,omitempty"`
	SponsorNames      string       `json:"sponsorNames,omitempty"`
	OfficiatingPriest string       `json:"officiatingPriest,omitempty"`
	Address           string       `json:"address,omitempty"`
	ParishAddress     string       `json:"parishAddress,omitempty"`
	ParentAddress     string       `json:"parentAddress,omitempty"`
	Note              string       `json:"note,omitempty"`
	CertificatePath   string       `json:"certificatePath,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
}

// BaptismNote is an append-only revision of a baptism's note. Baptism.Note
// mirrors the latest row.
type BaptismNote struct {
	ID        int64     `json:"id"`
	BaptismID int64     `json:"baptismId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Communion struct {
	ID                       int64        `json:"id"`
	BaptismID                int64        `json:"baptismId"`
	Source                   RecordSource `json:"source"`
	CommunionDate            string       `json:"communionDate"`
	OfficiatingPriest        string       `json:"officiatingPriest"`
	Parish                   string       `json:"parish"`
	BaptismCertificatePath   string       `json:"baptismCertificatePath,omitempty"`
	CommunionCertificatePath string       `json:"communionCertificatePath,omitempty"`
	CreatedAt                time.Time    `json:"createdAt"`
}

type Confirmation struct {
	ID                int64     `json:"id"`
	BaptismID         int64     `json:"baptismId"`
	CommunionID       int64     `json:"communionId"`
	ConfirmationDate  string    `json:"confirmationDate"`
	OfficiatingBishop string    `json:"officiatingBishop"`
	Parish            string    `json:"parish,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Marriage struct {
	ID                  int64     `json:"id"`
	ParishID            int64     `json:"parishId"`
	BaptismID           *int64    `json:"baptismId,omitempty"`
	CommunionID         *int64    `json:"communionId,omitempty"`
	ConfirmationID      *int64    `json:"confirmationId,omitempty"`
	PartnersName        string    `json:"partnersName,omitempty"`
	MarriageDate        string    `json:"marriageDate"`
	MarriageTime        string    `json:"marriageTime,omitempty"`
	ChurchName          string    `json:"churchName,omitempty"`
	MarriageRegister    string    `json:"marriageRegister,omitempty"`
	Diocese             string    `json:"diocese,omitempty"`
	CivilRegistryNumber string    `json:"civilRegistryNumber,omitempty"`
	DispensationGranted bool      `json:"dispensationGranted,omitempty"`
	CanonicalNotes      string    `json:"canonicalNotes,omitempty"`
	OfficiatingPriest   string    `json:"officiatingPriest"`
	Parish              string    `json:"parish"`
	CreatedAt           time.Time `json:"createdAt"`
}

// MarriageParty holds one spouse's details in the extended marriage form,
// including optional links to that party's own prior sacraments. A link is
// either an id (recorded here) or a certificate path plus church name
// (recorded elsewhere).
type MarriageParty struct {
	ID                 int64     `json:"id"`
	MarriageID         int64     `json:"marriageId"`
	Role               PartyRole `json:"role"`
	FullName           string    `json:"fullName"`
	DateOfBirth        string    `json:"dateOfBirth,omitempty"`
	PlaceOfBirth       string    `json:"placeOfBirth,omitempty"`
	Nationality        string    `json:"nationality,omitempty"`
	ResidentialAddress string    `json:"residentialAddress,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Email              string    `json:"email,omitempty"`
	Occupation         string    `json:"occupation,omitempty"`
	MaritalStatus      string    `json:"maritalStatus,omitempty"`

	BaptismID      *int64 `json:"baptismId,omitempty"`
	CommunionID    *int64 `json:"communionId,omitempty"`
	ConfirmationID *int64 `json:"confirmationId,omitempty"`

	BaptismCertificatePath      string `json:"baptismCertificatePath,omitempty"`
	CommunionCertificatePath    string `json:"communionCertificatePath,omitempty"`
	ConfirmationCertificatePath string `json:"confirmationCertificatePath,omitempty"`
	BaptismChurch               string `json:"baptismChurch,omitempty"`
	CommunionChurch             string `json:"communionChurch,omitempty"`
	ConfirmationChurch          string `json:"confirmationChurch,omitempty"`
}

type MarriageWitness struct {
	ID         int64  `json:"id"`
	MarriageID int64  `json:"marriageId"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	SortOrder  int    `json:"sortOrder"`
}

type HolyOrder struct {
	ID                int64     `json:"id"`
	BaptismID         int64     `json:"baptismId"`
	CommunionID       int64     `json:"communionId"`
	ConfirmationID    int64     `json:"confirmationId"`
	OrdinationDate    string    `json:"ordinationDate"`
	OrderType         OrderType `json:"orderType"`
	OfficiatingBishop string    `json:"officiatingBishop"`
	ParishID          int64     `json:"parishId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}
