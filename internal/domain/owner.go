package domain

import "strings"

// Owner is the read model of a schedule owner's contact details.
// The record itself belongs to the authentication subsystem.
type Owner struct {
	id          OwnerID
	email       string
	deviceToken string
}

func NewOwner(id OwnerID, email, deviceToken string) (*Owner, error) {
	if id.IsZero() {
		return nil, ErrInvalidOwnerID
	}

	return &Owner{
		id:          id,
		email:       strings.TrimSpace(email),
		deviceToken: strings.TrimSpace(deviceToken),
	}, nil
}

func (o *Owner) ID() OwnerID {
	return o.id
}

func (o *Owner) Email() string {
	return o.email
}

func (o *Owner) DeviceToken() string {
	return o.deviceToken
}

func (o *Owner) HasAddress() bool {
	return o.email != ""
}

func (o *Owner) HasDeviceToken() bool {
	return o.deviceToken != ""
}
