package wizard

// FileUpload buffers a file received from the client until the final
// submission uploads it to the asset store.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// FormData accumulates everything the six steps collect. Only one of the
// four role sections is consulted at submission, selected by
// PersonalInfo.UserType.
type FormData struct {
	SignUp             SignUpForm
	Verification       VerificationForm
	PersonalInfo       PersonalInfoForm
	LocationInfo       LocationForm
	IdentityInfo       IdentityForm
	RiderDetails       RiderForm
	ProviderDetails    ProviderForm
	SupplierDetails    SupplierForm
	EducationalDetails EducationalForm
}

type SignUpForm struct {
	UserName        string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptedTerms   bool
}

type VerificationForm struct {
	Code string
}

type PersonalInfoForm struct {
	UserType     UserType
	Phone        string
	Gender       string
	BirthDate    string // YYYY-MM-DD
	ProfileImage *FileUpload
}

type LocationForm struct {
	Country        string
	Governorate    string
	City           string
	AddressDetails string
	AddressLink    string
}

type IdentityForm struct {
	FullName       string
	NationalNumber string
}

type RiderForm struct {
	RiderLevel          string
	EventTypes          []string
	YearsOfExperience   int
	Certifications      []FileUpload
	MedicalCertificates []FileUpload
}

type ProviderForm struct {
	// Services holds selected entries from the fixed service catalog.
	Services []string
}

type SupplierForm struct {
	Certifications *FileUpload
}

type EducationalForm struct {
	CourseIDs         []string
	BookIDs           []string
	YearsOfExperience int
	Certifications    *FileUpload
}

// --------------------------------------------------
// Location cascade
// Selecting a higher level resets everything below it.
// --------------------------------------------------
func (f *LocationForm) SetCountry(country string) {
	if f.Country != country {
		f.Governorate = ""
		f.City = ""
	}
	f.Country = country
}

func (f *LocationForm) SetGovernorate(governorate string) {
	if f.Governorate != governorate {
		f.City = ""
	}
	f.Governorate = governorate
}

func (f *LocationForm) SetCity(city string) {
	f.City = city
}
