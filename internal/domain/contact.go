package domain

// Contact is a mailing contact as the email provider stores it.
type Contact struct {
	ID         int64
	Email      string
	Attributes map[string]any
}

// Attribute returns a string attribute value, or "" when absent.
func (c Contact) Attribute(name string) string {
	v, ok := c.Attributes[name]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// MailingList is a provider-side contact list.
type MailingList struct {
	ID   int64
	Name string
}
