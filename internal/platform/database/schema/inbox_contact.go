package schema

// InboxContactTable represents the 'inbox.contact' table
type InboxContactTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	WhatsApp  string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// InboxContact is the schema definition for inbox.contact
var InboxContact = InboxContactTable{
	Table:     "inbox.contact",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Subject:   "subject",
	Message:   "message",
	WhatsApp:  "whatsapp",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns the selectable columns in scan order.
func (t InboxContactTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Subject, t.Message, t.WhatsApp, t.Status, t.CreatedAt, t.UpdatedAt}
}
