package wizard

import (
	"context"
	"fmt"

	"khayl/internal/profile"
	"khayl/internal/services"

	"github.com/google/uuid"
)

// AssetUploader is the asset-store slice the submission needs.
type AssetUploader interface {
	UploadBytes(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

// ServiceCreator creates one standalone service document per selected
// service for providers.
type ServiceCreator interface {
	CreateForProvider(
		ctx context.Context,
		providerID string,
		serviceType string,
		country, governorate, city string,
	) (*services.ServiceDocument, error)
}

type SubmitResult struct {
	Redirect string `json:"redirect"`
}

// Submitter assembles the profile patch from the accumulated form and
// persists it. The pipeline is strictly ordered: role assets first, then
// the profile image, then one atomic patch. Any failure aborts the whole
// submission; uploads that already happened are not rolled back.
type Submitter struct {
	store  profile.Store
	assets AssetUploader
	svc    ServiceCreator
}

func NewSubmitter(store profile.Store, assets AssetUploader, svc ServiceCreator) *Submitter {
	return &Submitter{store: store, assets: assets, svc: svc}
}

func (s *Submitter) Submit(ctx context.Context, userID string, form *FormData) (*SubmitResult, error) {
	userType := form.PersonalInfo.UserType

	fields := baseFields(form)

	// Role branch: exactly one details section is embedded.
	switch userType {
	case UserTypeRider:
		details, err := s.riderDetails(ctx, &form.RiderDetails)
		if err != nil {
			return nil, err
		}
		fields["riderDetails"] = details

	case UserTypeProvider:
		details, err := s.providerDetails(ctx, userID, form)
		if err != nil {
			return nil, err
		}
		fields["providerDetails"] = details

	case UserTypeSuppliers:
		details, err := s.supplierDetails(ctx, &form.SupplierDetails)
		if err != nil {
			return nil, err
		}
		fields["supplierDetails"] = details

	case UserTypeEducational:
		details, err := s.educationalDetails(ctx, &form.EducationalDetails)
		if err != nil {
			return nil, err
		}
		fields["educationalDetails"] = details

	default:
		return nil, fmt.Errorf("invalid user type %q", userType)
	}

	// Profile image goes up after the role assets.
	if img := form.PersonalInfo.ProfileImage; img != nil {
		ref, err := s.uploadAsset(ctx, "profiles", *img)
		if err != nil {
			return nil, err
		}
		fields["profileImage"] = ref
	}

	patch := profile.Patch{
		UserType:  string(userType),
		Fields:    fields,
		Completed: true,
	}

	if err := s.store.Apply(ctx, userID, patch); err != nil {
		return nil, err
	}

	redirect := "/"
	if userType == UserTypeProvider {
		redirect = "/profile/services"
	}

	return &SubmitResult{Redirect: redirect}, nil
}

// baseFields builds the sparse patch from steps 3-5. Fields are included
// only when present; absent values never overwrite the document.
func baseFields(form *FormData) map[string]any {
	fields := make(map[string]any)

	put := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}

	put("phone", form.PersonalInfo.Phone)
	put("gender", form.PersonalInfo.Gender)
	put("birthDate", form.PersonalInfo.BirthDate)
	put("country", form.LocationInfo.Country)
	put("governorate", form.LocationInfo.Governorate)
	put("city", form.LocationInfo.City)
	put("addressDetails", form.LocationInfo.AddressDetails)
	put("addressLink", form.LocationInfo.AddressLink)
	put("fullName", form.IdentityInfo.FullName)
	put("nationalNumber", form.IdentityInfo.NationalNumber)

	return fields
}

// uploadAsset stores one file under a locally generated unique key and
// returns its reference.
func (s *Submitter) uploadAsset(ctx context.Context, prefix string, file FileUpload) (AssetRef, error) {
	key := uuid.New().String()
	url, err := s.assets.UploadBytes(ctx, fmt.Sprintf("%s/%s-%s", prefix, key, file.Name), file.ContentType, file.Data)
	if err != nil {
		return AssetRef{}, err
	}
	return AssetRef{Key: key, URL: url}, nil
}

// uploadAll uploads files one at a time, in order, so key assignment is
// deterministic.
func (s *Submitter) uploadAll(ctx context.Context, prefix string, files []FileUpload) ([]AssetRef, error) {
	var refs []AssetRef
	for _, file := range files {
		ref, err := s.uploadAsset(ctx, prefix, file)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (s *Submitter) riderDetails(ctx context.Context, f *RiderForm) (map[string]any, error) {
	details := map[string]any{
		"riderLevel":        f.RiderLevel,
		"eventTypes":        f.EventTypes,
		"yearsOfExperience": f.YearsOfExperience,
	}

	certs, err := s.uploadAll(ctx, "certifications", f.Certifications)
	if err != nil {
		return nil, err
	}
	if len(certs) > 0 {
		details["certifications"] = certs
	}

	medical, err := s.uploadAll(ctx, "medical-certificates", f.MedicalCertificates)
	if err != nil {
		return nil, err
	}
	if len(medical) > 0 {
		details["medicalCertificates"] = medical
	}

	return details, nil
}

func (s *Submitter) providerDetails(ctx context.Context, userID string, form *FormData) (map[string]any, error) {
	selected := form.ProviderDetails.Services
	location := form.LocationInfo

	var refs []string
	for _, serviceType := range selected {
		doc, err := s.svc.CreateForProvider(
			ctx,
			userID,
			serviceType,
			location.Country,
			location.Governorate,
			location.City,
		)
		if err != nil {
			return nil, err
		}
		refs = append(refs, doc.ID)
	}

	// Every selected service must have produced a document.
	if len(refs) != len(selected) {
		return nil, fmt.Errorf("created %d of %d services", len(refs), len(selected))
	}

	return map[string]any{
		"services": refs,
	}, nil
}

func (s *Submitter) supplierDetails(ctx context.Context, f *SupplierForm) (map[string]any, error) {
	details := map[string]any{}

	if f.Certifications != nil {
		ref, err := s.uploadAsset(ctx, "certifications", *f.Certifications)
		if err != nil {
			return nil, err
		}
		details["certifications"] = ref
	}

	return details, nil
}

func (s *Submitter) educationalDetails(ctx context.Context, f *EducationalForm) (map[string]any, error) {
	details := map[string]any{
		"courses":           f.CourseIDs,
		"books":             f.BookIDs,
		"yearsOfExperience": f.YearsOfExperience,
	}

	if f.Certifications != nil {
		ref, err := s.uploadAsset(ctx, "certifications", *f.Certifications)
		if err != nil {
			return nil, err
		}
		details["certifications"] = ref
	}

	return details, nil
}
