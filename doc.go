// Package ledger implements a personal double-entry bookkeeping core.
//
// The package is organized around a small set of value types (Money, Quantity,
// Date), the account classification Chart, the Transaction record, and the
// tracked Item record (liabilities, depreciable assets, inventory lots and
// investments). A Store owns the transaction and item collections; posting
// operations on the Store translate user actions (income, expense, purchase,
// sale, investment, collection) into balanced transactions and item mutations,
// applied atomically.
//
// Reports (balance sheet, income statement, cash flow) and period statistics
// are pure functions over the store's transaction collection: they are
// recomputed by replay on every call and hold no state of their own.
package ledger
