package entity

// Page is the raw result of one browser navigation.
type Page struct {
	URL      string
	Title    string
	BodyText string
	HTML     string
}
