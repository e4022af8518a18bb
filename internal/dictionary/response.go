package dictionary

// apiEntry is one entry of the Collegiate API response array.
// Only the fields the page renders are decoded.
type apiEntry struct {
	Shortdef []string     `json:"shortdef"`
	Hwi      *apiHeadword `json:"hwi"`
}

// apiHeadword is the headword information block.
type apiHeadword struct {
	Hw  string             `json:"hw"`
	Prs []apiPronunciation `json:"prs"`
}

// apiPronunciation is one pronunciation of the headword.
type apiPronunciation struct {
	Mw    string    `json:"mw"`
	Sound *apiSound `json:"sound"`
}

// apiSound names the audio clip on the media host.
type apiSound struct {
	Audio string `json:"audio"`
}

// audioToken returns the first pronunciation's audio token, or "".
func (e *apiEntry) audioToken() string {
	if e.Hwi == nil || len(e.Hwi.Prs) == 0 || e.Hwi.Prs[0].Sound == nil {
		return ""
	}
	return e.Hwi.Prs[0].Sound.Audio
}
