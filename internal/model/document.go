package model

// Document stores an uploaded patient file inline as base64. Not
// content-addressed; every upload is its own record.
type Document struct {
	Base
	PatientID    string `json:"patient_id"`
	Filename     string `json:"filename"`
	ContentType  string `json:"content_type"`
	EncryptedB64 string `json:"encrypted_b64"`
	SizeBytes    int    `json:"size_bytes"`
}

func (*Document) Collection() string { return "document" }
