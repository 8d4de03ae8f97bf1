package cooldown

// Key identifies one cooldown slot in durable storage.
type Key string

const (
	KeyGoogleScraping Key = "google_scraping_button_cooldown_end"
	KeyBingScraping   Key = "bing_scraping_button_cooldown_end"
)

func (k Key) String() string {
	return string(k)
}
