package model

// Zone represents a DNS zone as held by the remote management service.
type Zone struct {
	Name                  string            `json:"name"`
	Etag                  string            `json:"etag,omitempty"`
	Location              string            `json:"location,omitempty"`
	Tags                  map[string]string `json:"tags,omitempty"`
	NameServers           []string          `json:"nameServers,omitempty"`
	NumberOfRecordSets    int64             `json:"numberOfRecordSets,omitempty"`
	MaxNumberOfRecordSets int64             `json:"maxNumberOfRecordSets,omitempty"`
}
