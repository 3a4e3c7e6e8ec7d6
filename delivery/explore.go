package delivery

import (
	"net/http"

	"github.com/yesyese/Visitor-Portal/gateway"
)

// defaultDistrictInfo is rendered whenever the district endpoint is
// unreachable, so the explore page always has content.
var defaultDistrictInfo = gateway.DistrictInfo{
	Places: []gateway.Place{
		{Name: "Prasanthi Nilayam", Description: "The main ashram and spiritual centre of Puttaparthi, visited by devotees from all over the world."},
		{Name: "Chaitanya Jyoti Museum", Description: "An award-winning museum depicting the life and message of Sri Sathya Sai Baba."},
		{Name: "Sathya Sai Space Theatre", Description: "A planetarium offering shows on astronomy and space science."},
		{Name: "Lepakshi Temple", Description: "A 16th-century Vijayanagara temple famous for its hanging pillar and giant monolithic Nandi."},
		{Name: "Thimmamma Marrimanu", Description: "One of the largest banyan trees in the world, spread over several acres."},
	},
	Transportation: []gateway.TransportOption{
		{Name: "Auto Rickshaw", Description: "Convenient for short distances within town. Agree on the fare before starting."},
		{Name: "APSRTC Buses", Description: "State-run buses connect Puttaparthi with nearby towns and cities."},
		{Name: "Taxi Services", Description: "Private taxis are available for day trips and airport transfers."},
		{Name: "Train", Description: "Sri Sathya Sai Prasanthi Nilayam railway station has direct trains to major cities."},
	},
	Festivals: []gateway.Festival{
		{Name: "Guru Purnima", Month: "July", Description: "A day dedicated to spiritual teachers, observed with special gatherings at the ashram."},
		{Name: "Dasara (Dussehra)", Month: "September/October", Description: "Ten days of celebrations marking the victory of good over evil."},
		{Name: "Sri Sathya Sai's Birthday", Month: "November 23rd", Description: "The largest celebration of the year, drawing visitors from across the globe."},
	},
	Phrases: []gateway.Phrase{
		{English: "Hello / Greetings", Telugu: "Namaskaram"},
		{English: "Thank you", Telugu: "Dhanyavadalu"},
		{English: "How are you?", Telugu: "Meeru ela unnaru?"},
		{English: "How much does this cost?", Telugu: "Idi enta?"},
		{English: "Where is...?", Telugu: "... ekkada undi?"},
	},
	Customs: []string{
		"Remove your footwear before entering temples and homes.",
		"Dress modestly, especially at religious sites.",
		"Use your right hand for giving and receiving.",
		"Ask permission before photographing people or inside temples.",
	},
}

// exploreHandler renders district information. The content is fetched without
// the session credential; a failed fetch falls back to the built-in defaults.
func (h *HTTPEndpoint) exploreHandler(w http.ResponseWriter, r *http.Request) {
	log := h.app.GetLogger().WithField("page", "explore")

	info, err := h.app.GetGateway().DistrictInfo(r.Context())
	if err != nil {
		log.WithField("error", err).Warn("failed to fetch district info")
		info = &defaultDistrictInfo
	}

	if err := exploreTemplate.ExecuteTemplate(w, "explore.html", info); err != nil {
		log.WithField("error", err).Error("failed to execute template")
		http.Error(w, "Could not render the explore page.", http.StatusInternalServerError)
	}
}
