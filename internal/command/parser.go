package command

import (
	"fmt"
	"strconv"
	"strings"

	"bookstore/internal/common"
	"bookstore/internal/validate"
)

// Parse turns a token list into a typed command, rejecting everything
// syntactically malformed with ErrMalformed. Empty token lists are the
// caller's business; Parse requires at least the verb.
//
// The reserved verbs log and report are recognized but have no
// behavior, so they parse to an error like any unknown verb.
func Parse(tokens []string) (Command, error) {
	verb, args := tokens[0], tokens[1:]

	switch verb {
	case "su":
		return parseSu(args)
	case "logout":
		if len(args) != 0 {
			return nil, malformed("logout takes no arguments")
		}
		return Logout{}, nil
	case "register":
		return parseRegister(args)
	case "passwd":
		return parsePasswd(args)
	case "useradd":
		return parseUserAdd(args)
	case "delete":
		if len(args) != 1 || !validate.UserID(args[0]) {
			return nil, malformed("delete wants one userid")
		}
		return Delete{UserID: args[0]}, nil
	case "select":
		if len(args) != 1 || !validate.ISBN(args[0]) {
			return nil, malformed("select wants one isbn")
		}
		return Select{ISBN: args[0]}, nil
	case "modify":
		return parseModify(args)
	case "import":
		return parseImport(args)
	case "buy":
		return parseBuy(args)
	case "show":
		return parseShow(args)
	case "quit", "exit":
		// terminates unconditionally; trailing tokens are ignored
		return Quit{}, nil
	case "log", "report":
		return nil, malformed("reserved verb %s", verb)
	default:
		return nil, malformed("unknown verb %s", verb)
	}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, common.ErrMalformed)...)
}

func parseSu(args []string) (Command, error) {
	if len(args) < 1 || len(args) > 2 || !validate.UserID(args[0]) {
		return nil, malformed("su wants userid and optional password")
	}
	cmd := Su{UserID: args[0]}
	if len(args) == 2 {
		if !validate.Password(args[1]) {
			return nil, malformed("su: bad password syntax")
		}
		cmd.Password, cmd.HasPassword = args[1], true
	}
	return cmd, nil
}

func parseRegister(args []string) (Command, error) {
	if len(args) != 3 ||
		!validate.UserID(args[0]) ||
		!validate.Password(args[1]) ||
		!validate.UserName(args[2]) {
		return nil, malformed("register wants userid, password, username")
	}
	return Register{UserID: args[0], Password: args[1], UserName: args[2]}, nil
}

func parsePasswd(args []string) (Command, error) {
	if len(args) < 2 || len(args) > 3 || !validate.UserID(args[0]) {
		return nil, malformed("passwd wants userid, optional old, new")
	}
	cmd := Passwd{UserID: args[0]}
	if len(args) == 2 {
		cmd.New = args[1]
	} else {
		cmd.Old, cmd.HasOld = args[1], true
		cmd.New = args[2]
	}
	if !validate.Password(cmd.New) || (cmd.HasOld && !validate.Password(cmd.Old)) {
		return nil, malformed("passwd: bad password syntax")
	}
	return cmd, nil
}

func parseUserAdd(args []string) (Command, error) {
	if len(args) != 4 ||
		!validate.UserID(args[0]) ||
		!validate.Password(args[1]) ||
		!validate.Privilege(args[2]) ||
		!validate.UserName(args[3]) {
		return nil, malformed("useradd wants userid, password, privilege, username")
	}
	priv, _ := strconv.Atoi(args[2])
	return UserAdd{UserID: args[0], Password: args[1], Privilege: priv, UserName: args[3]}, nil
}

func parseModify(args []string) (Command, error) {
	var cmd Modify
	seen := make(map[string]struct{}, len(args))

	once := func(field string) error {
		if _, dup := seen[field]; dup {
			return malformed("modify: repeated -%s", field)
		}
		seen[field] = struct{}{}
		return nil
	}

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "-ISBN="):
			if err := once("ISBN"); err != nil {
				return nil, err
			}
			v := strings.TrimPrefix(arg, "-ISBN=")
			if v == "" || !validate.ISBN(v) {
				return nil, malformed("modify: bad isbn")
			}
			cmd.ISBN = &v
		case strings.HasPrefix(arg, "-name="):
			if err := once("name"); err != nil {
				return nil, err
			}
			v, ok := quotedValue(arg, "-name=")
			if !ok || !validate.BookText(v) {
				return nil, malformed("modify: bad name")
			}
			cmd.Name = &v
		case strings.HasPrefix(arg, "-author="):
			if err := once("author"); err != nil {
				return nil, err
			}
			v, ok := quotedValue(arg, "-author=")
			if !ok || !validate.BookText(v) {
				return nil, malformed("modify: bad author")
			}
			cmd.Author = &v
		case strings.HasPrefix(arg, "-keyword="):
			if err := once("keyword"); err != nil {
				return nil, err
			}
			v, ok := quotedValue(arg, "-keyword=")
			if !ok || !validate.Keyword(v) || !validate.KeywordSegmentsUnique(v) {
				return nil, malformed("modify: bad keyword")
			}
			cmd.Keyword = &v
		case strings.HasPrefix(arg, "-price="):
			if err := once("price"); err != nil {
				return nil, err
			}
			v := strings.TrimPrefix(arg, "-price=")
			if !validate.NonNegativeDecimal(v) {
				return nil, malformed("modify: bad price")
			}
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, malformed("modify: bad price")
			}
			cmd.Price = &price
		default:
			return nil, malformed("modify: unknown argument %q", arg)
		}
	}
	return cmd, nil
}

func parseImport(args []string) (Command, error) {
	if len(args) != 2 || !validate.PositiveInt(args[0]) || !validate.PositiveDecimal(args[1]) {
		return nil, malformed("import wants quantity and cost")
	}
	qty, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, malformed("import: quantity out of range")
	}
	return Import{Quantity: qty}, nil
}

func parseBuy(args []string) (Command, error) {
	if len(args) != 2 || !validate.ISBN(args[0]) || !validate.PositiveInt(args[1]) {
		return nil, malformed("buy wants isbn and quantity")
	}
	qty, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, malformed("buy: quantity out of range")
	}
	return Buy{ISBN: args[0], Quantity: qty}, nil
}

func parseShow(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return Show{Field: ShowAll}, nil
	case 1:
	default:
		return nil, malformed("show wants at most one filter")
	}

	arg := args[0]
	switch {
	case strings.HasPrefix(arg, "-ISBN="):
		v := strings.TrimPrefix(arg, "-ISBN=")
		if v == "" {
			return nil, malformed("show: empty isbn filter")
		}
		return Show{Field: ShowByISBN, Value: v}, nil
	case strings.HasPrefix(arg, "-name="):
		v, ok := quotedValue(arg, "-name=")
		if !ok {
			return nil, malformed("show: bad name filter")
		}
		return Show{Field: ShowByName, Value: v}, nil
	case strings.HasPrefix(arg, "-author="):
		v, ok := quotedValue(arg, "-author=")
		if !ok {
			return nil, malformed("show: bad author filter")
		}
		return Show{Field: ShowByAuthor, Value: v}, nil
	case strings.HasPrefix(arg, "-keyword="):
		v, ok := quotedValue(arg, "-keyword=")
		if !ok || strings.Contains(v, validate.KeywordSeparator) {
			return nil, malformed("show: bad keyword filter")
		}
		return Show{Field: ShowByKeyword, Value: v}, nil
	default:
		return nil, malformed("show: unknown filter %q", arg)
	}
}

// quotedValue extracts the value of a flag argument whose value must be
// wrapped in double quotes inside the same token, e.g. -name="Go".
// It fails on a missing or empty quoted value. Values with spaces are
// split by the tokenizer before they ever get here, leaving the closing
// quote in another token, so they fail too, as the protocol demands.
func quotedValue(arg, prefix string) (string, bool) {
	rest := strings.TrimPrefix(arg, prefix)
	if len(rest) < 3 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}
