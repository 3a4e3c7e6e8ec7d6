package gateway

// Wire types for the remote visitor-portal API. Field names follow what the
// service actually speaks; the registration and profile payloads use
// snake_case while Form C uses capitalized keys.

// RegistrationRequest starts a registration and triggers the OTP email.
type RegistrationRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	MobileNo         string `json:"mobile_no"`
	PassportNumber   string `json:"passport_number"`
	Nationality      string `json:"nationality"`
	PassportValidity string `json:"passport_validity"`
}

// LoginResponse carries the bearer credential. Some deployments return it
// under "token" instead of "access_token".
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

// Credential returns whichever token field the service populated.
func (r LoginResponse) Credential() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

// Form C submission statuses reported in VisitorProfile.FormCStatus. Anything
// else is treated as unrecognized by the views.
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
)

// VisitorProfile is the server-owned view of the current user. The client
// never caches it; every page that needs it fetches it fresh.
type VisitorProfile struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	MobileNo         string `json:"mobile_no"`
	Nationality      string `json:"nationality"`
	PassportNumber   string `json:"passport_number"`
	PassportValidity string `json:"passport_validity"`
	FormCStatus      string `json:"form_c_status"`
}

// FormCApplication is the flat visitor-registration record, submitted once.
type FormCApplication struct {
	FullName         string `json:"FullName"`
	Nationality      string `json:"Nationality"`
	Gender           string `json:"Gender"`
	PassportNumber   string `json:"PassportNumber"`
	PassportValidity string `json:"PassportValidity"`
	VisaNumber       string `json:"VisaNumber"`
	VisaExpiry       string `json:"VisaExpiry"`
	VisaType         string `json:"VisaType"`
	DateOfVisit      string `json:"DateOfVisit"`
	Occupation       string `json:"Occupation"`
	Employer         string `json:"Employer"`
	IndianAddress    string `json:"IndianAddress"`
}

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type Place struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Festival struct {
	Name        string `json:"name"`
	Month       string `json:"month"`
	Description string `json:"description"`
}

type TransportOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Phrase struct {
	English string `json:"english"`
	Telugu  string `json:"telugu"`
}

// DistrictInfo bundles the relatively static district content behind a single
// endpoint.
type DistrictInfo struct {
	Places         []Place           `json:"places"`
	Transportation []TransportOption `json:"transportation"`
	Festivals      []Festival        `json:"festivals"`
	Phrases        []Phrase          `json:"phrases"`
	Customs        []string          `json:"customs"`
}

// DashboardData is the per-user dashboard payload.
type DashboardData struct {
	UpcomingFestivals []Festival `json:"upcoming_festivals"`
}

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// UploadResult identifies a stored file for later download or deletion.
type UploadResult struct {
	FileID string `json:"file_id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}
