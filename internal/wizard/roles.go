package wizard

// UserType selects which role-specific sub-form applies at the final step
// and which submission branch runs.
type UserType string

const (
	UserTypeRider       UserType = "rider"
	UserTypeProvider    UserType = "provider"
	UserTypeSuppliers   UserType = "suppliers"
	UserTypeEducational UserType = "educational_services"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeRider, UserTypeProvider, UserTypeSuppliers, UserTypeEducational:
		return true
	}
	return false
}

// RiderLevel options shown at step 6 for riders.
var RiderLevels = []string{"beginner", "intermediate", "advanced", "professional"}

// EventTypes a rider can take part in.
var EventTypes = []string{"racing", "touring", "training"}

func validEventType(e string) bool {
	for _, v := range EventTypes {
		if v == e {
			return true
		}
	}
	return false
}

// AssetRef points at an uploaded file in the asset store. Key is generated
// locally at upload time so array ordering is deterministic.
type AssetRef struct {
	Key string `json:"_key"`
	URL string `json:"url"`
}
