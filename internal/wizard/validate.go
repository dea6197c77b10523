package wizard

import (
	"regexp"
	"strings"
	"time"

	"khayl/internal/services"
)

var (
	emailPattern          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nationalNumberPattern = regexp.MustCompile(`^[0-9]{10,14}$`)
	phoneStripper         = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "")
)

// ValidateStep checks one step of the form and returns the full error set
// for that step. It is a pure function of the form and the message bundle:
// calling it twice with the same inputs yields the same result.
func ValidateStep(step int, form *FormData, msgs Messages) (map[string]string, bool) {
	errs := make(map[string]string)

	switch step {
	case 1:
		validateSignUp(&form.SignUp, msgs, errs)
	case 2:
		validateVerification(&form.Verification, msgs, errs)
	case 3:
		validatePersonalInfo(&form.PersonalInfo, msgs, errs)
	case 4:
		validateLocation(&form.LocationInfo, msgs, errs)
	case 5:
		validateIdentity(&form.IdentityInfo, msgs, errs)
	case 6:
		validateRoleDetails(form, msgs, errs)
	}

	return errs, len(errs) == 0
}

func validateSignUp(f *SignUpForm, msgs Messages, errs map[string]string) {
	switch {
	case f.UserName == "":
		errs["userName"] = msgs.Get("username_required")
	case len(f.UserName) < 3:
		errs["userName"] = msgs.Get("username_too_short")
	}

	switch {
	case f.Email == "":
		errs["email"] = msgs.Get("email_required")
	case !emailPattern.MatchString(f.Email):
		errs["email"] = msgs.Get("email_invalid")
	}

	switch {
	case f.Password == "":
		errs["password"] = msgs.Get("password_required")
	case len(f.Password) < 6:
		errs["password"] = msgs.Get("password_too_short")
	}

	if f.ConfirmPassword != f.Password {
		errs["confirmPassword"] = msgs.Get("confirm_password_match")
	}

	if !f.AcceptedTerms {
		errs["terms"] = msgs.Get("terms_required")
	}
}

func validateVerification(f *VerificationForm, msgs Messages, errs map[string]string) {
	switch {
	case f.Code == "":
		errs["verificationCode"] = msgs.Get("code_required")
	case len(f.Code) != 6:
		errs["verificationCode"] = msgs.Get("code_length")
	}
}

func validatePersonalInfo(f *PersonalInfoForm, msgs Messages, errs map[string]string) {
	if !f.UserType.Valid() {
		errs["userType"] = msgs.Get("user_type_required")
	}

	switch {
	case f.Phone == "":
		errs["phone"] = msgs.Get("phone_required")
	case len(phoneStripper.Replace(f.Phone)) < 10:
		errs["phone"] = msgs.Get("phone_too_short")
	}

	if f.ProfileImage == nil {
		errs["profileImage"] = msgs.Get("profile_image_required")
	}

	if f.Gender == "" {
		errs["gender"] = msgs.Get("gender_required")
	}

	if f.BirthDate == "" {
		errs["birthDate"] = msgs.Get("birth_date_required")
	} else if birthDate, err := time.Parse("2006-01-02", f.BirthDate); err != nil {
		errs["birthDate"] = msgs.Get("birth_date_required")
	} else if birthDate.After(time.Now()) {
		errs["birthDate"] = msgs.Get("birth_date_future")
	}
}

func validateLocation(f *LocationForm, msgs Messages, errs map[string]string) {
	if f.Country == "" {
		errs["country"] = msgs.Get("country_required")
	}
	if f.Governorate == "" {
		errs["governorate"] = msgs.Get("governorate_required")
	}
	if f.City == "" {
		errs["city"] = msgs.Get("city_required")
	}

	if len(strings.TrimSpace(f.AddressDetails)) < 10 {
		errs["addressDetails"] = msgs.Get("address_too_short")
	}

	if !strings.HasPrefix(f.AddressLink, "http://") && !strings.HasPrefix(f.AddressLink, "https://") {
		errs["addressLink"] = msgs.Get("address_link_invalid")
	}
}

func validateIdentity(f *IdentityForm, msgs Messages, errs map[string]string) {
	// Full legal name heuristic: at least three whitespace-separated tokens.
	if len(strings.Fields(f.FullName)) < 3 {
		errs["fullName"] = msgs.Get("full_name_incomplete")
	}

	if !nationalNumberPattern.MatchString(f.NationalNumber) {
		errs["nationalNumber"] = msgs.Get("national_number_invalid")
	}
}

func validateRoleDetails(form *FormData, msgs Messages, errs map[string]string) {
	switch form.PersonalInfo.UserType {
	case UserTypeRider:
		f := &form.RiderDetails
		if f.RiderLevel == "" {
			errs["riderLevel"] = msgs.Get("rider_level_required")
		}
		if len(f.EventTypes) == 0 {
			errs["eventTypes"] = msgs.Get("event_types_required")
		} else {
			for _, e := range f.EventTypes {
				if !validEventType(e) {
					errs["eventTypes"] = msgs.Get("event_types_required")
					break
				}
			}
		}
		if f.YearsOfExperience < 0 {
			errs["yearsOfExperience"] = msgs.Get("experience_negative")
		}

	case UserTypeProvider:
		f := &form.ProviderDetails
		if len(f.Services) == 0 {
			errs["services"] = msgs.Get("services_required")
		} else {
			for _, s := range f.Services {
				if !services.InCatalog(s) {
					errs["services"] = msgs.Get("service_unknown")
					break
				}
			}
		}

	case UserTypeSuppliers:
		// Certifications are optional, nothing is hard-required.

	case UserTypeEducational:
		f := &form.EducationalDetails
		if len(f.CourseIDs)+len(f.BookIDs) == 0 {
			errs["content"] = msgs.Get("content_required")
		}
		if f.YearsOfExperience < 0 {
			errs["yearsOfExperience"] = msgs.Get("experience_negative")
		}

	default:
		errs["userType"] = msgs.Get("user_type_required")
	}
}
