package command

// Command is the tagged-variant type produced by Parse: one variant per
// protocol verb, carrying already syntax-checked arguments. The
// processor adds the state-dependent checks (privilege, existence,
// uniqueness, selection).
type Command interface {
	verb() string
}

// Su switches to another account, layering a new login on the stack.
// Password is meaningful only when HasPassword is set; the omitted form
// is legal only for a strictly higher-privileged current session.
type Su struct {
	UserID      string
	Password    string
	HasPassword bool
}

// Logout pops the most recent login.
type Logout struct{}

// Register creates a privilege-1 account.
type Register struct {
	UserID   string
	Password string
	UserName string
}

// Passwd changes an account password. Old is meaningful only when
// HasOld is set; the short form is legal only at privilege 7.
type Passwd struct {
	UserID string
	Old    string
	New    string
	HasOld bool
}

// UserAdd creates an account with an assigned privilege, which must be
// strictly below the acting session's.
type UserAdd struct {
	UserID    string
	Password  string
	Privilege int
	UserName  string
}

// Delete removes an account that is not logged in anywhere.
type Delete struct {
	UserID string
}

// Select binds a book (created on demand) to the top session entry.
type Select struct {
	ISBN string
}

// Modify edits fields of the selected book. Nil pointers mean "leave
// unchanged"; the parser guarantees each field appears at most once and
// is syntactically valid, so the processor only adds the isbn collision
// check before applying all edits atomically.
type Modify struct {
	ISBN    *string
	Name    *string
	Author  *string
	Keyword *string
	Price   *float64
}

// Import increases the selected book's stock. The cost is validated but
// otherwise unused.
type Import struct {
	Quantity int64
}

// Buy decrements stock and reports the total price.
type Buy struct {
	ISBN     string
	Quantity int64
}

// ShowField identifies the single optional filter of Show.
type ShowField int

const (
	ShowAll ShowField = iota
	ShowByISBN
	ShowByName
	ShowByAuthor
	ShowByKeyword
)

// Show lists catalog records, optionally filtered on one field.
type Show struct {
	Field ShowField
	Value string
}

// Quit terminates the command loop.
type Quit struct{}

func (Su) verb() string       { return "su" }
func (Logout) verb() string   { return "logout" }
func (Register) verb() string { return "register" }
func (Passwd) verb() string   { return "passwd" }
func (UserAdd) verb() string  { return "useradd" }
func (Delete) verb() string   { return "delete" }
func (Select) verb() string   { return "select" }
func (Modify) verb() string   { return "modify" }
func (Import) verb() string   { return "import" }
func (Buy) verb() string      { return "buy" }
func (Show) verb() string     { return "show" }
func (Quit) verb() string     { return "quit" }
