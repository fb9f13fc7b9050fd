package dto

// Logo is an optional binary asset supplied with a provisioning request.
type Logo struct {
	Data        []byte
	ContentType string
}

type ProvisionClub struct {
	Name        string
	AccessToken string
	Logo        *Logo
}
