package domain

// Denormalized read views. List and detail screens join a record with the
// display fields of its ancestor records so the client never has to chase the
// chain itself. When an ancestor cannot be resolved the display fields stay
// empty; the view must remain renderable.

// BaptismView is a baptism with sentinel fallbacks applied for external
// records.
type BaptismView struct {
	Baptism
	External bool `json:"external"`
}

type CommunionView struct {
	Communion
	BaptismName string `json:"baptismName,omitempty"`
	Surname     string `json:"surname,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	FathersName string `json:"fathersName,omitempty"`
	MothersName string `json:"mothersName,omitempty"`
}

type ConfirmationView struct {
	Confirmation
	CommunionDate string `json:"communionDate,omitempty"`
	BaptismName   string `json:"baptismName,omitempty"`
	Surname       string `json:"surname,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
}

type MarriageView struct {
	Marriage
	Parties          []MarriageParty   `json:"parties,omitempty"`
	Witnesses        []MarriageWitness `json:"witnesses,omitempty"`
	ConfirmationDate string            `json:"confirmationDate,omitempty"`
	BaptismName      string            `json:"baptismName,omitempty"`
	Surname          string            `json:"surname,omitempty"`
}

type HolyOrderView struct {
	HolyOrder
	ConfirmationDate string `json:"confirmationDate,omitempty"`
	BaptismName      string `json:"baptismName,omitempty"`
	Surname          string `json:"surname,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
}

// PresentBaptism applies the sentinel fallbacks for external records: fields
// the uploaded certificate did not cover render as "See Certificate", names
// with no safe default as "—". Internal records pass through unchanged.
func PresentBaptism(b Baptism) BaptismView {
	view := BaptismView{Baptism: b, External: b.Source == SourceExternal}
	if b.Source != SourceExternal {
		return view
	}
	fallback := func(s *string, sentinel string) {
		if *s == "" {
			*s = sentinel
		}
	}
	fallback(&view.OtherNames, NoValue)
	fallback(&view.Gender, SeeCertificate)
	fallback(&view.DateOfBirth, SeeCertificate)
	fallback(&view.SponsorNames, SeeCertificate)
	fallback(&view.OfficiatingPriest, SeeCertificate)
	fallback(&view.Address, SeeCertificate)
	fallback(&view.ParishAddress, SeeCertificate)
	fallback(&view.ParentAddress, SeeCertificate)
	return view
}
