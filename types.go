package sacristy

// Wire types shared by the REST handlers and the Go client.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	Role         string `json:"role"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type CreateDioceseRequest struct {
	Name string `json:"name"`
}

type CreateParishRequest struct {
	ParishName  string `json:"parishName"`
	Description string `json:"description,omitempty"`
}

type CreateBaptismRequest struct {
	BaptismName       string `json:"baptismName"`
	OtherNames        string `json:"otherNames,omitempty"`
	Surname           string `json:"surname"`
	Gender            string `json:"gender,omitempty"`
	DateOfBirth       string `json:"dateOfBirth"`
	FathersName       string `json:"fathersName"`
	MothersName       string `json:"mothersName"`
	SponsorNames      string `json:"sponsorNames,omitempty"`
	OfficiatingPriest string `json:"officiatingPriest"`
	Address           string `json:"address,omitempty"`
	ParishAddress     string `json:"parishAddress,omitempty"`
	ParentAddress     string `json:"parentAddress,omitempty"`
	Note              string `json:"note,omitempty"`
}

type UpdateBaptismRequest struct {
	Note string `json:"note"`
}

type CreateCommunionRequest struct {
	BaptismID         int64  `json:"baptismId"`
	CommunionDate     string `json:"communionDate"`
	OfficiatingPriest string `json:"officiatingPriest"`
	Parish            string `json:"parish"`
}

type CreateConfirmationRequest struct {
	CommunionID       int64  `json:"communionId"`
	ConfirmationDate  string `json:"confirmationDate"`
	OfficiatingBishop string `json:"officiatingBishop"`
	Parish            string `json:"parish,omitempty"`
}

type PartyInput struct {
	FullName           string `json:"fullName"`
	DateOfBirth        string `json:"dateOfBirth,omitempty"`
	PlaceOfBirth       string `json:"placeOfBirth,omitempty"`
	Nationality        string `json:"nationality,omitempty"`
	ResidentialAddress string `json:"residentialAddress,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty"`
	Occupation         string `json:"occupation,omitempty"`
	MaritalStatus      string `json:"maritalStatus,omitempty"`

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

type WitnessInput struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// CreateMarriageRequest carries both payload shapes: the legacy single
// confirmation link and the extended groom/bride/witnesses form. Presence of
// the groom decides which path is taken.
type CreateMarriageRequest struct {
	ParishID            int64  `json:"parishId"`
	MarriageDate        string `json:"marriageDate"`
	MarriageTime        string `json:"marriageTime,omitempty"`
	ChurchName          string `json:"churchName,omitempty"`
	MarriageRegister    string `json:"marriageRegister,omitempty"`
	Diocese             string `json:"diocese,omitempty"`
	CivilRegistryNumber string `json:"civilRegistryNumber,omitempty"`
	DispensationGranted bool   `json:"dispensationGranted,omitempty"`
	CanonicalNotes      string `json:"canonicalNotes,omitempty"`
	OfficiatingPriest   string `json:"officiatingPriest"`
	Parish              string `json:"parish"`

	// legacy shape
	PartnersName   string `json:"partnersName,omitempty"`
	ConfirmationID *int64 `json:"confirmationId,omitempty"`

	// extended shape
	Groom     *PartyInput    `json:"groom,omitempty"`
	Bride     *PartyInput    `json:"bride,omitempty"`
	Witnesses []WitnessInput `json:"witnesses,omitempty"`
}

type CreateHolyOrderRequest struct {
	ConfirmationID    int64  `json:"confirmationId"`
	OrdinationDate    string `json:"ordinationDate"`
	OrderType         string `json:"orderType"`
	OfficiatingBishop string `json:"officiatingBishop"`
	ParishID          int64  `json:"parishId,omitempty"`
}

// UploadedCertificate is returned by certificate upload endpoints so the
// client can reference the stored file in a later create request.
type UploadedCertificate struct {
	Path     string `json:"path"`
	FileName string `json:"fileName"`
}
