package models

import (
	"time"

	"github.com/openparish/sacristy/internal/domain"
)

type Diocese struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:text;not null"`
}

type Parish struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	ParishName  string  `gorm:"type:text;not null"`
	DioceseID   int64   `gorm:"index;not null"`
	Diocese     Diocese `gorm:"constraint:OnDelete:RESTRICT;"`
	Description string  `gorm:"type:text"`
}

type Baptism struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	ParishID          int64  `gorm:"index;not null"`
	Parish            Parish `gorm:"constraint:OnDelete:RESTRICT;"`
	Source            string `gorm:"type:text;not null;default:'INTERNAL'"`
	BaptismName       string `gorm:"type:text;not null"`
	OtherNames        string `gorm:"type:text"`
	Surname           string `gorm:"type:text;not null"`
	Gender            string `gorm:"type:text"`
	DateOfBirth       string `gorm:"type:text"`
	FathersName       string `gorm:"type:text"`
	MothersName       string `gorm:"type:text"`
	SponsorNames      string `gorm:"type:text"`
	OfficiatingPriest string `gorm:"type:text"`
	Address           string `gorm:"type:text"`
	ParishAddress     string `gorm:"type:text"`
	ParentAddress     string `gorm:"type:text"`
	Note              string `gorm:"type:text"`
	CertificatePath   string `gorm:"type:text"`
	CreatedAt         time.Time
}

type BaptismNote struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	BaptismID int64   `gorm:"index;not null"`
	Baptism   Baptism `gorm:"constraint:OnDelete:CASCADE;"`
	Content   string  `gorm:"type:text;not null"`
	CreatedAt time.Time
}

type Communion struct {
	ID                       int64   `gorm:"primaryKey;autoIncrement"`
	BaptismID                int64   `gorm:"index;not null"`
	Baptism                  Baptism `gorm:"constraint:OnDelete:RESTRICT;"`
	Source                   string  `gorm:"type:text;not null;default:'INTERNAL'"`
	CommunionDate            string  `gorm:"type:text;not null"`
	OfficiatingPriest        string  `gorm:"type:text"`
	Parish                   string  `gorm:"type:text"`
	BaptismCertificatePath   string  `gorm:"type:text"`
	CommunionCertificatePath string  `gorm:"type:text"`
	CreatedAt                time.Time
}

type Confirmation struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	BaptismID         int64     `gorm:"index;not null"`
	CommunionID       int64     `gorm:"index;not null"`
	Communion         Communion `gorm:"constraint:OnDelete:RESTRICT;"`
	ConfirmationDate  string    `gorm:"type:text;not null"`
	OfficiatingBishop string    `gorm:"type:text"`
	Parish            string    `gorm:"type:text"`
	CreatedAt         time.Time
}

type Marriage struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	ParishID            int64  `gorm:"index;not null"`
	BaptismID           *int64 `gorm:"index"`
	CommunionID         *int64 `gorm:"index"`
	ConfirmationID      *int64 `gorm:"index"`
	PartnersName        string `gorm:"type:text"`
	MarriageDate        string `gorm:"type:text;not null"`
	MarriageTime        string `gorm:"type:text"`
	ChurchName          string `gorm:"type:text"`
	MarriageRegister    string `gorm:"type:text"`
	Diocese             string `gorm:"type:text"`
	CivilRegistryNumber string `gorm:"type:text"`
	DispensationGranted bool   `gorm:"not null;default:false"`
	CanonicalNotes      string `gorm:"type:text"`
	OfficiatingPriest   string `gorm:"type:text"`
	Parish              string `gorm:"type:text"`
	CreatedAt           time.Time
}

type MarriageParty struct {
	ID                 int64    `gorm:"primaryKey;autoIncrement"`
	MarriageID         int64    `gorm:"index;not null"`
	Marriage           Marriage `gorm:"constraint:OnDelete:CASCADE;"`
	Role               string   `gorm:"type:text;not null"`
	FullName           string   `gorm:"type:text;not null"`
	DateOfBirth        string   `gorm:"type:text"`
	PlaceOfBirth       string   `gorm:"type:text"`
	Nationality        string   `gorm:"type:text"`
	ResidentialAddress string   `gorm:"type:text"`
	Phone              string   `gorm:"type:text"`
	Email              string   `gorm:"type:text"`
	Occupation         string   `gorm:"type:text"`
	MaritalStatus      string   `gorm:"type:text"`

	BaptismID      *int64 `gorm:"index"`
	CommunionID    *int64 `gorm:"index"`
	ConfirmationID *int64 `gorm:"index"`

	BaptismCertificatePath      string `gorm:"type:text"`
	CommunionCertificatePath    string `gorm:"type:text"`
	ConfirmationCertificatePath string `gorm:"type:text"`
	BaptismChurch               string `gorm:"type:text"`
	CommunionChurch             string `gorm:"type:text"`
	ConfirmationChurch          string `gorm:"type:text"`
}

type MarriageWitness struct {
	ID         int64    `gorm:"primaryKey;autoIncrement"`
	MarriageID int64    `gorm:"index;not null"`
	Marriage   Marriage `gorm:"constraint:OnDelete:CASCADE;"`
	FullName   string   `gorm:"type:text;not null"`
	Phone      string   `gorm:"type:text"`
	Address    string   `gorm:"type:text"`
	SortOrder  int      `gorm:"not null;default:0"`
}

type HolyOrder struct {
	ID                int64        `gorm:"primaryKey;autoIncrement"`
	BaptismID         int64        `gorm:"index;not null"`
	CommunionID       int64        `gorm:"index;not null"`
	ConfirmationID    int64        `gorm:"index;not null"`
	Confirmation      Confirmation `gorm:"constraint:OnDelete:RESTRICT;"`
	OrdinationDate    string       `gorm:"type:text;not null"`
	OrderType         string       `gorm:"type:text;not null"`
	OfficiatingBishop string       `gorm:"type:text"`
	ParishID          int64        `gorm:"index"`
	CreatedAt         time.Time
}

// Conversions between persistence rows and domain values.

func (m Diocese) Domain() domain.Diocese {
	return domain.Diocese{ID: m.ID, Name: m.Name}
}

func DioceseRow(d domain.Diocese) Diocese {
	return Diocese{ID: d.ID, Name: d.Name}
}

func (m Parish) Domain() domain.Parish {
	return domain.Parish{ID: m.ID, ParishName: m.ParishName, DioceseID: m.DioceseID, Description: m.Description}
}

func ParishRow(p domain.Parish) Parish {
	return Parish{ID: p.ID, ParishName: p.ParishName, DioceseID: p.DioceseID, Description: p.Description}
}

func (m Baptism) Domain() domain.Baptism {
	return domain.Baptism{
		ID:                m.ID,
		ParishID:          m.ParishID,
		Source:            domain.RecordSource(m.Source),
		BaptismName:       m.BaptismName,
		OtherNames:        m.OtherNames,
		Surname:           m.Surname,
		Gender:            m.Gender,
		DateOfBirth:       m.DateOfBirth,
		FathersName:       m.FathersName,
		MothersName:       m.MothersName,
		SponsorNames:      m.SponsorNames,
		OfficiatingPriest: m.OfficiatingPriest,
		Address:           m.Address,
		ParishAddress:     m.ParishAddress,
		ParentAddress:     m.ParentAddress,
		Note:              m.Note,
		CertificatePath:   m.CertificatePath,
		CreatedAt:         m.CreatedAt,
	}
}

func BaptismRow(b domain.Baptism) Baptism {
	return Baptism{
		ID:                b.ID,
		ParishID:          b.ParishID,
		Source:            string(b.Source),
		BaptismName:       b.BaptismName,
		OtherNames:        b.OtherNames,
		Surname:           b.Surname,
		Gender:            b.Gender,
		DateOfBirth:       b.DateOfBirth,
		FathersName:       b.FathersName,
		MothersName:       b.MothersName,
		SponsorNames:      b.SponsorNames,
		OfficiatingPriest: b.OfficiatingPriest,
		Address:           b.Address,
		ParishAddress:     b.ParishAddress,
		ParentAddress:     b.ParentAddress,
		Note:              b.Note,
		CertificatePath:   b.CertificatePath,
		CreatedAt:         b.CreatedAt,
	}
}

func (m BaptismNote) Domain() domain.BaptismNote {
	return domain.BaptismNote{ID: m.ID, BaptismID: m.BaptismID, Content: m.Content, CreatedAt: m.CreatedAt}
}

func (m Communion) Domain() domain.Communion {
	return domain.Communion{
		ID:                       m.ID,
		BaptismID:                m.BaptismID,
		Source:                   domain.RecordSource(m.Source),
		CommunionDate:            m.CommunionDate,
		OfficiatingPriest:        m.OfficiatingPriest,
		Parish:                   m.Parish,
		BaptismCertificatePath:   m.BaptismCertificatePath,
		CommunionCertificatePath: m.CommunionCertificatePath,
		CreatedAt:                m.CreatedAt,
	}
}

func CommunionRow(c domain.Communion) Communion {
	return Communion{
		ID:                       c.ID,
		BaptismID:                c.BaptismID,
		Source:                   string(c.Source),
		CommunionDate:            c.CommunionDate,
		OfficiatingPriest:        c.OfficiatingPriest,
		Parish:                   c.Parish,
		BaptismCertificatePath:   c.BaptismCertificatePath,
		CommunionCertificatePath: c.CommunionCertificatePath,
		CreatedAt:                c.CreatedAt,
	}
}

func (m Confirmation) Domain() domain.Confirmation {
	return domain.Confirmation{
		ID:                m.ID,
		BaptismID:         m.BaptismID,
		CommunionID:       m.CommunionID,
		ConfirmationDate:  m.ConfirmationDate,
		OfficiatingBishop: m.OfficiatingBishop,
		Parish:            m.Parish,
		CreatedAt:         m.CreatedAt,
	}
}

func ConfirmationRow(c domain.Confirmation) Confirmation {
	return Confirmation{
		ID:                c.ID,
		BaptismID:         c.BaptismID,
		CommunionID:       c.CommunionID,
		ConfirmationDate:  c.ConfirmationDate,
		OfficiatingBishop: c.OfficiatingBishop,
		Parish:            c.Parish,
		CreatedAt:         c.CreatedAt,
	}
}

func (m Marriage) Domain() domain.Marriage {
	return domain.Marriage{
		ID:                  m.ID,
		ParishID:            m.ParishID,
		BaptismID:           m.BaptismID,
		CommunionID:         m.CommunionID,
		ConfirmationID:      m.ConfirmationID,
		PartnersName:        m.PartnersName,
		MarriageDate:        m.MarriageDate,
		MarriageTime:        m.MarriageTime,
		ChurchName:          m.ChurchName,
		MarriageRegister:    m.MarriageRegister,
		Diocese:             m.Diocese,
		CivilRegistryNumber: m.CivilRegistryNumber,
		DispensationGranted: m.DispensationGranted,
		CanonicalNotes:      m.CanonicalNotes,
		OfficiatingPriest:   m.OfficiatingPriest,
		Parish:              m.Parish,
		CreatedAt:           m.CreatedAt,
	}
}

func MarriageRow(m domain.Marriage) Marriage {
	return Marriage{
		ID:                  m.ID,
		ParishID:            m.ParishID,
		BaptismID:           m.BaptismID,
		CommunionID:         m.CommunionID,
		ConfirmationID:      m.ConfirmationID,
		PartnersName:        m.PartnersName,
		MarriageDate:        m.MarriageDate,
		MarriageTime:        m.MarriageTime,
		ChurchName:          m.ChurchName,
		MarriageRegister:    m.MarriageRegister,
		Diocese:             m.Diocese,
		CivilRegistryNumber: m.CivilRegistryNumber,
		DispensationGranted: m.DispensationGranted,
		CanonicalNotes:      m.CanonicalNotes,
		OfficiatingPriest:   m.OfficiatingPriest,
		Parish:              m.Parish,
		CreatedAt:           m.CreatedAt,
	}
}

func (m MarriageParty) Domain() domain.MarriageParty {
	return domain.MarriageParty{
		ID:                 m.ID,
		MarriageID:         m.MarriageID,
		Role:               domain.PartyRole(m.Role),
		FullName:           m.FullName,
		DateOfBirth:        m.DateOfBirth,
		PlaceOfBirth:       m.PlaceOfBirth,
		Nationality:        m.Nationality,
		ResidentialAddress: m.ResidentialAddress,
		Phone:              m.Phone,
		Email:              m.Email,
		Occupation:         m.Occupation,
		MaritalStatus:      m.MaritalStatus,

		BaptismID:      m.BaptismID,
		CommunionID:    m.CommunionID,
		ConfirmationID: m.ConfirmationID,

		BaptismCertificatePath:      m.BaptismCertificatePath,
		CommunionCertificatePath:    m.CommunionCertificatePath,
		ConfirmationCertificatePath: m.ConfirmationCertificatePath,
		BaptismChurch:               m.BaptismChurch,
		CommunionChurch:             m.CommunionChurch,
		ConfirmationChurch:          m.ConfirmationChurch,
	}
}

func PartyRow(p domain.MarriageParty) MarriageParty {
	return MarriageParty{
		ID:                 p.ID,
		MarriageID:         p.MarriageID,
		Role:               string(p.Role),
		FullName:           p.FullName,
		DateOfBirth:        p.DateOfBirth,
		PlaceOfBirth:       p.PlaceOfBirth,
		Nationality:        p.Nationality,
		ResidentialAddress: p.ResidentialAddress,
		Phone:              p.Phone,
		Email:              p.Email,
		Occupation:         p.Occupation,
		MaritalStatus:      p.MaritalStatus,

		BaptismID:      p.BaptismID,
		CommunionID:    p.CommunionID,
		ConfirmationID: p.ConfirmationID,

		BaptismCertificatePath:      p.BaptismCertificatePath,
		CommunionCertificatePath:    p.CommunionCertificatePath,
		ConfirmationCertificatePath: p.ConfirmationCertificatePath,
		BaptismChurch:               p.BaptismChurch,
		CommunionChurch:             p.CommunionChurch,
		ConfirmationChurch:          p.ConfirmationChurch,
	}
}

func (m MarriageWitness) Domain() domain.MarriageWitness {
	return domain.MarriageWitness{
		ID:         m.ID,
		MarriageID: m.MarriageID,
		FullName:   m.FullName,
		Phone:      m.Phone,
		Address:    m.Address,
		SortOrder:  m.SortOrder,
	}
}

func WitnessRow(w domain.MarriageWitness) MarriageWitness {
	return MarriageWitness{
		ID:         w.ID,
		MarriageID: w.MarriageID,
		FullName:   w.FullName,
		Phone:      w.Phone,
		Address:    w.Address,
		SortOrder:  w.SortOrder,
	}
}

func (m HolyOrder) Domain() domain.HolyOrder {
	return domain.HolyOrder{
		ID:                m.ID,
		BaptismID:         m.BaptismID,
		CommunionID:       m.CommunionID,
		ConfirmationID:    m.ConfirmationID,
		OrdinationDate:    m.OrdinationDate,
		OrderType:         domain.OrderType(m.OrderType),
		OfficiatingBishop: m.OfficiatingBishop,
		ParishID:          m.ParishID,
		CreatedAt:         m.CreatedAt,
	}
}

func HolyOrderRow(h domain.HolyOrder) HolyOrder {
	return HolyOrder{
		ID:                h.ID,
		BaptismID:         h.BaptismID,
		CommunionID:       h.CommunionID,
		ConfirmationID:    h.ConfirmationID,
		OrdinationDate:    h.OrdinationDate,
		OrderType:         string(h.OrderType),
		OfficiatingBishop: h.OfficiatingBishop,
		ParishID:          h.ParishID,
		CreatedAt:         h.CreatedAt,
	}
}
