package refdata

// Location reference data forms a three-level cascade:
// country -> governorate -> city.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Governorate struct {
	ID          int    `json:"id"`
	CountryCode string `json:"countryCode"`
	Name        string `json:"name"`
}

type City struct {
	ID            int    `json:"id"`
	GovernorateID int    `json:"governorateId"`
	Name          string `json:"name"`
}

type Course struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Book struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Bundle is everything the onboarding client needs up front.
type Bundle struct {
	Countries    []Country     `json:"countries"`
	Governorates []Governorate `json:"governorates"`
	Cities       []City        `json:"cities"`
	Courses      []Course      `json:"courses"`
	Books        []Book        `json:"books"`
}
