package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bookstore/internal/common"
	"bookstore/internal/logging"
	"bookstore/internal/models"
	"bookstore/internal/repositories/accounts"
	"bookstore/internal/repositories/books"
	"bookstore/internal/session"
)

// InvalidReply is the single undifferentiated error marker of the
// protocol. Internal errors stay distinguishable; callers of the
// protocol do not get to know why a command failed.
const InvalidReply = "Invalid"

// Result is the outcome of one input line. HasReply is false only for
// blank lines and for quit/exit; Reply may span several lines for show.
type Result struct {
	Reply    string
	HasReply bool
	Quit     bool
}

// Processor owns the mutable state of one interpreter run: both record
// stores and the login stack. It applies one command at a time; every
// mutating command ends with a full flush of the touched stores before
// the next command is accepted.
type Processor struct {
	accounts accounts.Repository
	books    books.Repository
	stack    *session.Stack
	log      logging.Logger
}

func NewProcessor(a accounts.Repository, b books.Repository, s *session.Stack, log logging.Logger) *Processor {
	return &Processor{accounts: a, books: b, stack: s, log: log}
}

// Execute processes one raw input line: strips the optional numeric
// prefix, tokenizes, parses and applies. A blank line yields no reply
// at all; every failure yields the bare InvalidReply marker.
func (p *Processor) Execute(ctx context.Context, line string) Result {
	tokens := Tokenize(StripPrefix(line))
	if len(tokens) == 0 {
		return Result{}
	}

	cmd, err := Parse(tokens)
	if err != nil {
		p.log.Debug(ctx, "rejected line", "verb", tokens[0], "err", err)
		return Result{Reply: InvalidReply, HasReply: true}
	}
	if _, ok := cmd.(Quit); ok {
		return Result{Quit: true}
	}

	reply, err := p.apply(ctx, cmd)
	if err != nil {
		p.log.Debug(ctx, "rejected command", "verb", cmd.verb(), "err", err)
		return Result{Reply: InvalidReply, HasReply: true}
	}
	if reply == nil {
		return Result{}
	}
	return Result{Reply: *reply, HasReply: true}
}

// apply dispatches one parsed command. A nil reply with nil error means
// silent success.
func (p *Processor) apply(ctx context.Context, cmd Command) (*string, error) {
	switch c := cmd.(type) {
	case Su:
		return nil, p.su(ctx, c)
	case Logout:
		return nil, p.logout(ctx)
	case Register:
		return nil, p.register(ctx, c)
	case Passwd:
		return nil, p.passwd(ctx, c)
	case UserAdd:
		return nil, p.userAdd(ctx, c)
	case Delete:
		return nil, p.deleteAccount(ctx, c)
	case Select:
		return nil, p.selectBook(ctx, c)
	case Modify:
		return nil, p.modify(ctx, c)
	case Import:
		return nil, p.importStock(ctx, c)
	case Buy:
		return p.buy(ctx, c)
	case Show:
		return p.show(c)
	default:
		return nil, fmt.Errorf("verb %s: %w", cmd.verb(), common.ErrMalformed)
	}
}

func (p *Processor) su(ctx context.Context, c Su) error {
	target, ok := p.accounts.Find(c.UserID)
	if !ok {
		return fmt.Errorf("su %s: %w", c.UserID, common.ErrNotFound)
	}
	if !c.HasPassword {
		// password may be omitted only when the current session strictly
		// outranks the target
		if p.stack.CurrentPrivilege() <= target.Privilege {
			return fmt.Errorf("su %s without password: %w", c.UserID, common.ErrUnauthorized)
		}
	} else if c.Password != target.Password {
		return fmt.Errorf("su %s: %w", c.UserID, common.ErrUnauthorized)
	}

	p.stack.Push(target.UserID, target.Privilege)
	p.log.Info(ctx, "login", "user", target.UserID, "privilege", target.Privilege, "depth", p.stack.Depth())
	return p.stack.Save(ctx)
}

func (p *Processor) logout(ctx context.Context) error {
	if err := p.stack.Pop(); err != nil {
		return err
	}
	p.log.Info(ctx, "logout", "depth", p.stack.Depth())
	return p.stack.Save(ctx)
}

func (p *Processor) register(ctx context.Context, c Register) error {
	return p.accounts.Add(ctx, models.Account{
		UserID:    c.UserID,
		Password:  c.Password,
		UserName:  c.UserName,
		Privilege: models.PrivilegeCustomer,
	})
}

func (p *Processor) passwd(ctx context.Context, c Passwd) error {
	cur := p.stack.CurrentPrivilege()
	if cur < models.PrivilegeCustomer {
		return fmt.Errorf("passwd: %w", common.ErrUnauthorized)
	}
	target, ok := p.accounts.Find(c.UserID)
	if !ok {
		return fmt.Errorf("passwd %s: %w", c.UserID, common.ErrNotFound)
	}
	// only privilege 7 may skip the old password; anyone supplying one
	// must match it
	if !c.HasOld && cur != models.PrivilegeAdmin {
		return fmt.Errorf("passwd %s without old password: %w", c.UserID, common.ErrUnauthorized)
	}
	if c.HasOld && c.Old != target.Password {
		return fmt.Errorf("passwd %s: %w", c.UserID, common.ErrUnauthorized)
	}
	target.Password = c.New
	return p.accounts.Save(ctx)
}

func (p *Processor) userAdd(ctx context.Context, c UserAdd) error {
	cur := p.stack.CurrentPrivilege()
	if cur < models.PrivilegeStaff {
		return fmt.Errorf("useradd: %w", common.ErrUnauthorized)
	}
	if c.Privilege >= cur {
		return fmt.Errorf("useradd %s at privilege %d: %w", c.UserID, c.Privilege, common.ErrUnauthorized)
	}
	return p.accounts.Add(ctx, models.Account{
		UserID:    c.UserID,
		Password:  c.Password,
		UserName:  c.UserName,
		Privilege: c.Privilege,
	})
}

func (p *Processor) deleteAccount(ctx context.Context, c Delete) error {
	if p.stack.CurrentPrivilege() < models.PrivilegeAdmin {
		return fmt.Errorf("delete: %w", common.ErrUnauthorized)
	}
	if _, ok := p.accounts.Find(c.UserID); !ok {
		return fmt.Errorf("delete %s: %w", c.UserID, common.ErrNotFound)
	}
	if p.stack.Contains(c.UserID) {
		return fmt.Errorf("delete %s: %w", c.UserID, common.ErrLoggedIn)
	}
	return p.accounts.Remove(ctx, c.UserID)
}

func (p *Processor) selectBook(ctx context.Context, c Select) error {
	if p.stack.CurrentPrivilege() < models.PrivilegeStaff {
		return fmt.Errorf("select: %w", common.ErrUnauthorized)
	}
	top := p.stack.Top()
	if top == nil {
		return common.ErrEmptyStack
	}
	if _, ok := p.books.Find(c.ISBN); !ok {
		// selecting an unknown isbn creates the book with empty fields
		if err := p.books.Add(ctx, models.Book{ISBN: c.ISBN}); err != nil {
			return err
		}
		p.log.Info(ctx, "book created by select", "isbn", c.ISBN)
	}
	top.SelectedISBN = c.ISBN
	return p.stack.Save(ctx)
}

func (p *Processor) modify(ctx context.Context, c Modify) error {
	if p.stack.CurrentPrivilege() < models.PrivilegeStaff {
		return fmt.Errorf("modify: %w", common.ErrUnauthorized)
	}
	top := p.stack.Top()
	if top == nil || top.SelectedISBN == "" {
		return common.ErrNoSelection
	}
	book, ok := p.books.Find(top.SelectedISBN)
	if !ok {
		return fmt.Errorf("selected book %s: %w", top.SelectedISBN, common.ErrNotFound)
	}

	if c.ISBN != nil {
		if *c.ISBN == book.ISBN {
			return fmt.Errorf("modify isbn to its current value: %w", common.ErrMalformed)
		}
		if _, taken := p.books.Find(*c.ISBN); taken {
			return fmt.Errorf("modify isbn to %s: %w", *c.ISBN, common.ErrDuplicate)
		}
	}

	// every argument validated; now all edits apply together
	if c.ISBN != nil {
		book.ISBN = *c.ISBN
	}
	if c.Name != nil {
		book.Name = *c.Name
	}
	if c.Author != nil {
		book.Author = *c.Author
	}
	if c.Keyword != nil {
		book.Keyword = *c.Keyword
	}
	if c.Price != nil {
		book.Price = *c.Price
	}
	top.SelectedISBN = book.ISBN

	if err := p.books.Save(ctx); err != nil {
		return err
	}
	return p.stack.Save(ctx)
}

func (p *Processor) importStock(ctx context.Context, c Import) error {
	if p.stack.CurrentPrivilege() < models.PrivilegeStaff {
		return fmt.Errorf("import: %w", common.ErrUnauthorized)
	}
	top := p.stack.Top()
	if top == nil || top.SelectedISBN == "" {
		return common.ErrNoSelection
	}
	book, ok := p.books.Find(top.SelectedISBN)
	if !ok {
		return fmt.Errorf("selected book %s: %w", top.SelectedISBN, common.ErrNotFound)
	}
	book.Stock += c.Quantity
	return p.books.Save(ctx)
}

func (p *Processor) buy(ctx context.Context, c Buy) (*string, error) {
	if p.stack.CurrentPrivilege() < models.PrivilegeCustomer {
		return nil, fmt.Errorf("buy: %w", common.ErrUnauthorized)
	}
	book, ok := p.books.Find(c.ISBN)
	if !ok {
		return nil, fmt.Errorf("buy %s: %w", c.ISBN, common.ErrNotFound)
	}
	if book.Stock < c.Quantity {
		return nil, fmt.Errorf("buy %d of %s with stock %d: %w", c.Quantity, c.ISBN, book.Stock, common.ErrOutOfStock)
	}
	book.Stock -= c.Quantity
	if err := p.books.Save(ctx); err != nil {
		return nil, err
	}
	total := fmt.Sprintf("%.2f", book.Price*float64(c.Quantity))
	p.log.Info(ctx, "sale", "isbn", c.ISBN, "qty", c.Quantity, "total", total)
	return &total, nil
}

func (p *Processor) show(c Show) (*string, error) {
	if p.stack.CurrentPrivilege() < models.PrivilegeCustomer {
		return nil, fmt.Errorf("show: %w", common.ErrUnauthorized)
	}

	var matched []models.Book
	for _, b := range p.books.All() {
		var ok bool
		switch c.Field {
		case ShowAll:
			ok = true
		case ShowByISBN:
			ok = b.ISBN == c.Value
		case ShowByName:
			ok = b.Name == c.Value
		case ShowByAuthor:
			ok = b.Author == c.Value
		case ShowByKeyword:
			ok = b.HasKeywordSegment(c.Value)
		}
		if ok {
			matched = append(matched, b)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ISBN < matched[j].ISBN })

	// an empty result set is a single blank line, not silence
	reply := ""
	if len(matched) > 0 {
		lines := make([]string, 0, len(matched))
		for _, b := range matched {
			lines = append(lines, b.Line())
		}
		reply = strings.Join(lines, "\n")
	}
	return &reply, nil
}
