package model

// Region represents a participating country or territory, keyed by its NOC code
type Region struct {
	NOC    string `db:"noc" json:"NOC"`
	Region string `db:"region" json:"region"`
	Notes  string `db:"notes" json:"notes"`
}

// RegionCreateRequest is the schema for POST /regions.
// Fields are pointers so a missing key can be told apart from an empty value.
type RegionCreateRequest struct {
	NOC    *string `json:"NOC"`
	Region *string `json:"region"`
	Notes  *string `json:"notes"`
}

// RegionUpdateRequest is the schema for PATCH /regions/:noc.
// NOC is not part of it; the code is immutable once created.
type RegionUpdateRequest struct {
	Region *string `json:"region"`
	Notes  *string `json:"notes"`
}

// MessageResponse is the confirmation body returned by update and delete
type MessageResponse struct {
	Message string `json:"message"`
}
