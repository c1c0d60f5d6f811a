package domain

// Client is a customer organisation.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ClientUpdateParams holds a partial client update. Nil fields are left unchanged.
type ClientUpdateParams struct {
	Name    *string
	Contact *string
	Email   *string
	Phone   *string
	Address *string
}

// Apply returns a copy of c with the non-nil params merged in.
func (p ClientUpdateParams) Apply(c Client) Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Contact != nil {
		c.Contact = *p.Contact
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	return c
}
