package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
)

type purchaseCmd struct {
	date        dateFlag
	name        string
	kind        string
	category    string
	amount      float64
	quantity    float64
	unitPrice   float64
	from        string
	cash        float64
	installment float64
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "record a purchase, optionally on installment" }
func (*purchaseCmd) Usage() string {
	return `gbu purchase -n <name> -a <total> [-k expense|asset|inventory] [-c <expense account>]
             [-q <quantity> -u <unit price>] [-from <asset account>]
             [-cash <portion> -installment <portion>] [-d <date>]

  Posts a purchase. An asset purchase creates a depreciable-asset item, an
  inventory purchase creates a lot of -q units at -u each. Paying by
  installment creates a liability sized to the deferred portion; a split of
  -cash and -installment must sum to the total and produces two linked
  transactions. Without -cash or -installment the whole total is paid from
  the -from account.
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	c.date.register(f)
	f.StringVar(&c.name, "n", "", "Name of the thing bought.")
	f.StringVar(&c.kind, "k", "expense", "What the purchase is: expense, asset or inventory.")
	f.StringVar(&c.category, "c", "", "Expense account to charge, -k expense only.")
	f.Float64Var(&c.amount, "a", 0, "Total price.")
	f.Float64Var(&c.quantity, "q", 0, "Units bought, -k inventory only.")
	f.Float64Var(&c.unitPrice, "u", 0, "Price per unit, -k inventory only.")
	f.StringVar(&c.from, "from", ledger.AccountCash, "Asset account paying the cash portion.")
	f.Float64Var(&c.cash, "cash", 0, "Cash portion of a split payment.")
	f.Float64Var(&c.installment, "installment", 0, "Installment portion, deferred into a liability.")
}

func (c *purchaseCmd) purchaseKind() (ledger.PurchaseKind, error) {
	switch c.kind {
	case "expense":
		return ledger.PurchaseExpense, nil
	case "asset":
		return ledger.PurchaseAsset, nil
	case "inventory":
		return ledger.PurchaseInventory, nil
	default:
		return 0, fmt.Errorf("unknown purchase kind %q, want expense, asset or inventory", c.kind)
	}
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.date.parse()
	if err != nil {
		return fail(err)
	}
	kind, err := c.purchaseKind()
	if err != nil {
		return fail(err)
	}

	pay := ledger.Payment{Account: c.from, Cash: amount(c.cash), Installment: amount(c.installment)}
	if c.cash == 0 && c.installment == 0 {
		pay.Cash = amount(c.amount)
	}

	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := s.RecordPurchase(ledger.Purchase{
		Date:           day,
		Name:           c.name,
		Kind:           kind,
		ExpenseAccount: c.category,
		Amount:         amount(c.amount),
		Quantity:       ledger.Q(c.quantity),
		UnitPrice:      amount(c.unitPrice),
		Payment:        pay,
	})
	if err != nil {
		return fail(err)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Recorded purchase %q for %s in %d transaction(s)\n", c.name, amount(c.amount), len(p.Transactions))
	for _, item := range p.NewItems {
		fmt.Printf("  tracked %s %q (%s)\n", item.Kind, item.Name, item.ID)
	}
	return subcommands.ExitSuccess
}
