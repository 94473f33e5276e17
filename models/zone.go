package models

// Zone is one covered city district, used for the coverage directory and
// per-zone landing pages.
type Zone struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ZoneDirectory is the coverage catalog: every zone crossed with every
// active service.
type ZoneDirectory struct {
	Zones    []Zone        `json:"zones"`
	Services []ServiceItem `json:"services"`
}
