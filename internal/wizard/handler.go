package wizard

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"khayl/internal/auth"
	"khayl/internal/storage"

	"github.com/gin-gonic/gin"
)

const sessionHeader = "X-Onboarding-Session"

type Handler struct {
	store    *SessionStore
	accounts *auth.Service
	submit   *Submitter
}

func NewHandler(store *SessionStore, accounts *auth.Service, submit *Submitter) *Handler {
	return &Handler{store: store, accounts: accounts, submit: submit}
}

func locale(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	if strings.HasPrefix(c.GetHeader("Accept-Language"), "ar") {
		return "ar"
	}
	return "en"
}

func stateView(s *State) gin.H {
	return gin.H{
		"step":            s.Step,
		"totalSteps":      TotalSteps,
		"errors":          s.Errors,
		"info":            s.Info,
		"authenticated":   s.Authenticated,
		"isEmailVerified": s.IsEmailVerified,
	}
}

// --------------------------------------------------
// POST /onboarding/start
// Resolves the initial step from the caller's session (if any) and opens
// a wizard session.
// --------------------------------------------------
func (h *Handler) Start(c *gin.Context) {
	ctrl := NewController(NewMessages(locale(c)), h.accounts, h.submit)

	var user *auth.User
	var detailErr error
	if token := bearerToken(c); token != "" {
		// An invalid token degrades to the unauthenticated path; a valid
		// token with a failed profile fetch is still known-authenticated.
		if userID, _, _, err := auth.ValidateToken(token); err == nil {
			user, detailErr = h.accounts.VerifySession(token)
			if detailErr != nil {
				user = &auth.User{ID: userID}
			}
		}
	}

	if done := ctrl.ResolveInitial(user, detailErr); done {
		c.JSON(http.StatusOK, gin.H{"redirect": "/"})
		return
	}

	session := h.store.Create(ctrl)
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"state":     stateView(ctrl.State()),
	})
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	session, ok := h.store.Get(c.GetHeader(sessionHeader))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "onboarding session not found"})
		return nil, false
	}
	return session, true
}

// --------------------------------------------------
// GET /onboarding/state
// --------------------------------------------------
func (h *Handler) GetState(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Do(func(ctrl *Controller) {
		c.JSON(http.StatusOK, stateView(ctrl.State()))
	})
}

// --------------------------------------------------
// PUT /onboarding/signup
// --------------------------------------------------
func (h *Handler) UpdateSignUp(c *gin.Context) {
	var req struct {
		UserName        *string `json:"userName"`
		Email           *string `json:"email"`
		Password        *string `json:"password"`
		ConfirmPassword *string `json:"confirmPassword"`
		AcceptedTerms   *bool   `json:"acceptedTerms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Do(func(ctrl *Controller) {
		state := ctrl.State()
		form := &state.Form.SignUp

		if req.UserName != nil {
			form.UserName = *req.UserName
			state.ClearError("userName")
		}
		if req.Email != nil {
			form.Email = *req.Email
			state.ClearError("email")
		}
		if req.Password != nil {
			form.Password = *req.Password
			state.ClearError("password")
		}
		if req.ConfirmPassword != nil {
			form.ConfirmPassword = *req.ConfirmPassword
			state.ClearError("confirmPassword")
		}
		if req.AcceptedTerms != nil {
			form.AcceptedTerms = *req.AcceptedTerms
			state.ClearError("terms")
		}

		c.JSON(http.StatusOK, stateView(state))
	})
}

// --------------------------------------------------
// PUT /onboarding/verification
// --------------------------------------------------
func (h *Handler) UpdateVerification(c *gin.Context) {
	var req struct {
		Code *string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Do(func(ctrl *Controller) {
		state := ctrl.State()
		if req.Code != nil {
			state.Form.Verification.Code = *req.Code
			state.ClearError("verificationCode")
		}
		c.JSON(http.StatusOK, stateView(state))
	})
}

// --------------------------------------------------
// PUT /onboarding/personal  (multipart: profileImage file + fields)
// --------------------------------------------------
func (h *Handler) UpdatePersonal(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var image *FileUpload
	if fileHeader, err := c.FormFile("profileImage"); err == nil {
		data, contentType, err := storage.ReadMultipart(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read profile image"})
			return
		}
		image = &FileUpload{Name: fileHeader.Filename, ContentType: contentType, Data: data}
	}

	session.Do(func(ctrl *Controller) {
		state := ctrl.State()
		form := &state.Form.PersonalInfo

		setIfPosted(c, "userType", func(v string) {
			form.UserType = UserType(v)
			state.ClearError("userType")
		})
		setIfPosted(c, "phone", func(v string) {
			form.Phone = v
			state.ClearError("phone")
		})
		setIfPosted(c, "gender", func(v string) {
			form.Gender = v
			state.ClearError("gender")
		})
		setIfPosted(c, "birthDate", func(v string) {
			form.BirthDate = v
			state.ClearError("birthDate")
		})
		if image != nil {
			form.ProfileImage = image
			state.ClearError("profileImage")
		}

		c.JSON(http.StatusOK, stateView(state))
	})
}

// --------------------------------------------------
// PUT /onboarding/location
// --------------------------------------------------
func (h *Handler) UpdateLocation(c *gin.Context) {
	var req struct {
		Country        *string `json:"country"`
		Governorate    *string `json:"governorate"`
		City           *string `json:"city"`
		AddressDetails *string `json:"addressDetails"`
		AddressLink    *string `json:"addressLink"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Do(func(ctrl *Controller) {
		state := ctrl.State()
		form := &state.Form.LocationInfo

		// Cascade order matters: country first, then governorate, then city.
		if req.Country != nil {
			form.SetCountry(*req.Country)
			state.ClearError("country")
		}
		if req.Governorate != nil {
			form.SetGovernorate(*req.Governorate)
			state.ClearError("governorate")
		}
		if req.City != nil {
			form.SetCity(*req.City)
			state.ClearError("city")
		}
		if req.AddressDetails != nil {
			form.AddressDetails = *req.AddressDetails
			state.ClearError("addressDetails")
		}
		if req.AddressLink != nil {
			form.AddressLink = *req.AddressLink
			state.ClearError("addressLink")
		}

		c.JSON(http.StatusOK, stateView(state))
	})
}

// --------------------------------------------------
// PUT /onboarding/identity
// --------------------------------------------------
func (h *Handler) UpdateIdentity(c *gin.Context) {
	var req struct {
		FullName       *string `json:"fullName"`
		NationalNumber *string `json:"nationalNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Do(func(ctrl *Controller) {
		state := ctrl.State()
		if req.FullName != nil {
			state.Form.IdentityInfo.FullName = *req.FullName
			state.ClearError("fullName")
		}
		if req.NationalNumber != nil {
			state.Form.IdentityInfo.NationalNumber = *req.NationalNumber
			state.ClearError("nationalNumber")
		}
		c.JSON(http.StatusOK, stateView(state))
	})
}

// --------------------------------------------------
// PUT /onboarding/details  (multipart: role fields + certification files)
// --------------------------------------------------
func (h *Handler) UpdateDetails(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	certifications, err := formFiles(c, "certifications")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read certifications"})
		return
	}
	medical, err := formFiles(c, "medicalCertificates")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read medical certificates"})
		return
	}

	session.Do(func(ctrl *Controller) {
		state := ctrl.State()
		form := &state.Form

		switch form.PersonalInfo.UserType {
		case UserTypeRider:
			setIfPosted(c, "riderLevel", func(v string) {
				form.RiderDetails.RiderLevel = v
				state.ClearError("riderLevel")
			})
			if values, posted := c.GetPostFormArray("eventTypes"); posted {
				form.RiderDetails.EventTypes = values
				state.ClearError("eventTypes")
			}
			setIfPosted(c, "yearsOfExperience", func(v string) {
				if years, err := strconv.Atoi(v); err == nil {
					form.RiderDetails.YearsOfExperience = years
					state.ClearError("yearsOfExperience")
				}
			})
			if len(certifications) > 0 {
				form.RiderDetails.Certifications = certifications
			}
			if len(medical) > 0 {
				form.RiderDetails.MedicalCertificates = medical
			}

		case UserTypeProvider:
			if values, posted := c.GetPostFormArray("services"); posted {
				form.ProviderDetails.Services = values
				state.ClearError("services")
			}

		case UserTypeSuppliers:
			if len(certifications) > 0 {
				form.SupplierDetails.Certifications = &certifications[0]
			}

		case UserTypeEducational:
			if values, posted := c.GetPostFormArray("courseIds"); posted {
				form.EducationalDetails.CourseIDs = values
				state.ClearError("content")
			}
			if values, posted := c.GetPostFormArray("bookIds"); posted {
				form.EducationalDetails.BookIDs = values
				state.ClearError("content")
			}
			setIfPosted(c, "yearsOfExperience", func(v string) {
				if years, err := strconv.Atoi(v); err == nil {
					form.EducationalDetails.YearsOfExperience = years
					state.ClearError("yearsOfExperience")
				}
			})
			if len(certifications) > 0 {
				form.EducationalDetails.Certifications = &certifications[0]
			}
		}

		c.JSON(http.StatusOK, stateView(state))
	})
}

// --------------------------------------------------
// POST /onboarding/next
// --------------------------------------------------
func (h *Handler) Next(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Do(func(ctrl *Controller) {
		err := ctrl.NextStep(c.Request.Context())
		state := ctrl.State()
		if err != nil && !errors.Is(err, ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, stateView(state))
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, stateView(state))
			return
		}
		c.JSON(http.StatusOK, stateView(state))
	})
}

// --------------------------------------------------
// POST /onboarding/prev
// --------------------------------------------------
func (h *Handler) Prev(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Do(func(ctrl *Controller) {
		ctrl.PrevStep()
		c.JSON(http.StatusOK, stateView(ctrl.State()))
	})
}

// --------------------------------------------------
// POST /onboarding/resend-code
// --------------------------------------------------
func (h *Handler) ResendCode(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.Do(func(ctrl *Controller) {
		if err := ctrl.ResendCode(c.Request.Context()); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, auth.ErrResendTooSoon) {
				status = http.StatusTooManyRequests
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
	})
}

// --------------------------------------------------
// POST /onboarding/submit
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var result *SubmitResult
	var submitErr error
	session.Do(func(ctrl *Controller) {
		result, submitErr = ctrl.Submit(c.Request.Context())
		if submitErr != nil {
			if errors.Is(submitErr, ErrValidation) || errors.Is(submitErr, ErrNotAtFinalStep) {
				c.JSON(http.StatusBadRequest, stateView(ctrl.State()))
				return
			}
			c.JSON(http.StatusBadGateway, stateView(ctrl.State()))
			return
		}
	})

	if submitErr != nil {
		return
	}

	// Flow is finished, the session has no further use.
	h.store.Delete(session.ID)
	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// helpers
// --------------------------------------------------
func bearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func setIfPosted(c *gin.Context, field string, set func(string)) {
	if value, posted := c.GetPostForm(field); posted {
		set(value)
	}
}

func formFiles(c *gin.Context, field string) ([]FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var files []FileUpload
	for _, fileHeader := range form.File[field] {
		data, contentType, err := storage.ReadMultipart(fileHeader)
		if err != nil {
			return nil, err
		}
		files = append(files, FileUpload{
			Name:        fileHeader.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}
	return files, nil
}
