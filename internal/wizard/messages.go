package wizard

// Messages resolves validation and status messages for the client's
// locale. Validation stays pure against this interface, the language is
// the caller's concern.
type Messages interface {
	Get(key string) string
}

type bundle map[string]string

func (b bundle) Get(key string) string {
	if msg, ok := b[key]; ok {
		return msg
	}
	return key
}

var english = bundle{
	"username_required":        "username is required",
	"username_too_short":       "username must be at least 3 characters",
	"email_required":           "email is required",
	"email_invalid":            "enter a valid email address",
	"password_required":        "password is required",
	"password_too_short":       "password must be at least 6 characters",
	"confirm_password_match":   "passwords do not match",
	"terms_required":           "you must accept the terms and conditions",
	"code_required":            "verification code is required",
	"code_length":              "verification code must be 6 digits",
	"code_invalid":             "verification code is incorrect or expired",
	"user_type_required":       "select an account type",
	"phone_required":           "phone number is required",
	"phone_too_short":          "enter a valid phone number",
	"profile_image_required":   "a profile photo is required",
	"gender_required":          "gender is required",
	"birth_date_required":      "birth date is required",
	"birth_date_future":        "birth date cannot be in the future",
	"country_required":         "country is required",
	"governorate_required":     "governorate is required",
	"city_required":            "city is required",
	"address_too_short":        "address details must be at least 10 characters",
	"address_link_invalid":     "address link must start with http:// or https://",
	"full_name_incomplete":     "enter your full legal name",
	"national_number_invalid":  "national number must be 10 to 14 digits",
	"rider_level_required":     "rider level is required",
	"event_types_required":     "select at least one event type",
	"experience_negative":      "years of experience cannot be negative",
	"services_required":        "select at least one service",
	"service_unknown":          "unknown service selected",
	"content_required":         "add at least one course or book",
	"registration_failed":      "could not create your account",
	"submit_failed":            "something went wrong while saving your profile, try again",
	"verified_cannot_go_back":  "your email is already verified, you cannot return to earlier steps",
}

var arabic = bundle{
	"username_required":        "اسم المستخدم مطلوب",
	"username_too_short":       "يجب أن يكون اسم المستخدم 3 أحرف على الأقل",
	"email_required":           "البريد الإلكتروني مطلوب",
	"email_invalid":            "أدخل بريدًا إلكترونيًا صالحًا",
	"password_required":        "كلمة المرور مطلوبة",
	"password_too_short":       "يجب أن تكون كلمة المرور 6 أحرف على الأقل",
	"confirm_password_match":   "كلمتا المرور غير متطابقتين",
	"terms_required":           "يجب الموافقة على الشروط والأحكام",
	"code_required":            "رمز التحقق مطلوب",
	"code_length":              "رمز التحقق يجب أن يكون 6 أرقام",
	"code_invalid":             "رمز التحقق غير صحيح أو منتهي الصلاحية",
	"user_type_required":       "اختر نوع الحساب",
	"phone_required":           "رقم الهاتف مطلوب",
	"phone_too_short":          "أدخل رقم هاتف صالح",
	"profile_image_required":   "الصورة الشخصية مطلوبة",
	"gender_required":          "النوع مطلوب",
	"birth_date_required":      "تاريخ الميلاد مطلوب",
	"birth_date_future":        "تاريخ الميلاد لا يمكن أن يكون في المستقبل",
	"country_required":         "الدولة مطلوبة",
	"governorate_required":     "المحافظة مطلوبة",
	"city_required":            "المدينة مطلوبة",
	"address_too_short":        "تفاصيل العنوان يجب أن تكون 10 أحرف على الأقل",
	"address_link_invalid":     "رابط العنوان يجب أن يبدأ بـ http:// أو https://",
	"full_name_incomplete":     "أدخل الاسم الكامل",
	"national_number_invalid":  "الرقم القومي يجب أن يكون من 10 إلى 14 رقمًا",
	"rider_level_required":     "مستوى الفروسية مطلوب",
	"event_types_required":     "اختر نوع فعالية واحدًا على الأقل",
	"experience_negative":      "سنوات الخبرة لا يمكن أن تكون سالبة",
	"services_required":        "اختر خدمة واحدة على الأقل",
	"service_unknown":          "تم اختيار خدمة غير معروفة",
	"content_required":         "أضف دورة أو كتابًا واحدًا على الأقل",
	"registration_failed":      "تعذر إنشاء الحساب",
	"submit_failed":            "حدث خطأ أثناء حفظ الملف الشخصي، حاول مرة أخرى",
	"verified_cannot_go_back":  "تم التحقق من بريدك بالفعل، لا يمكنك العودة إلى الخطوات السابقة",
}

// NewMessages returns the bundle for locale, falling back to English.
func NewMessages(locale string) Messages {
	if locale == "ar" {
		return arabic
	}
	return english
}
