package split

import (
	"container/heap"

	"github.com/shopspring/decimal"
)

// Optimize produces the ordered transfer list that settles every balance.
//
// Greedy pairing: the debtor and creditor with the largest outstanding
// magnitudes are matched and the smaller magnitude transferred, repeated
// until one side is exhausted. Ties on magnitude break toward the
// lexicographically smaller name, which makes the output deterministic for
// a given sheet. Each iteration retires at least one participant, so the
// transfer count is bounded by debtors + creditors − 1.
//
// The pairing follows the classic greedy settle-up bound; it is not
// guaranteed to be globally minimal in the strict set-partition sense.
//
// Transfers are quantized to cents. If rounding empties one side while the
// other still carries a residual above tolerance, the residual is
// force-settled against the counterparty of the last transfer instead of
// being dropped. A sheet that still fails to replay to zero afterwards
// reports ErrorReconciliation, which indicates an upstream balance bug.
func Optimize(sheet BalanceSheet) ([]Transaction, error) {
	debtors := partyHeap(sheet.Debtors())
	creditors := partyHeap(sheet.Creditors())

	heap.Init(&debtors)
	heap.Init(&creditors)

	transactions := make([]Transaction, 0, debtors.Len()+creditors.Len())

	for debtors.Len() > 0 && creditors.Len() > 0 {
		debtor, _ := heap.Pop(&debtors).(Party)
		creditor, _ := heap.Pop(&creditors).(Party)

		transfer := decimal.Min(debtor.Amount, creditor.Amount).Round(moneyPlaces)
		if !transfer.IsPositive() {
			// Sub-cent magnitudes never enter the heaps, so a zero
			// transfer means the sheet is corrupt.
			return nil, NewDomainError(ErrorReconciliation, "balances",
				"transfer between "+debtor.Name+" and "+creditor.Name+" rounds to zero")
		}

		transactions = append(transactions, Transaction{
			Payer:     debtor.Name,
			Recipient: creditor.Name,
			Amount:    transfer,
		})

		debtor.Amount = debtor.Amount.Sub(transfer)
		creditor.Amount = creditor.Amount.Sub(transfer)

		if debtor.Amount.GreaterThan(tolerance) {
			heap.Push(&debtors, debtor)
		}

		if creditor.Amount.GreaterThan(tolerance) {
			heap.Push(&creditors, creditor)
		}
	}

	transactions = settleResidual(transactions, &debtors, &creditors)

	if err := reconcile(sheet, transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// settleResidual drains whichever heap the rounding left non-empty, forcing
// the remainder into final transactions against the counterparty of the last
// emitted transfer. With cent-quantized balances both heaps empty together
// and this is a no-op.
func settleResidual(transactions []Transaction, debtors, creditors *partyHeap) []Transaction {
	if len(transactions) == 0 {
		return transactions
	}

	last := transactions[len(transactions)-1]

	for debtors.Len() > 0 {
		debtor, _ := heap.Pop(debtors).(Party)

		amount := debtor.Amount.Round(moneyPlaces)
		if amount.IsPositive() {
			transactions = append(transactions, Transaction{
				Payer:     debtor.Name,
				Recipient: last.Recipient,
				Amount:    amount,
			})
		}
	}

	for creditors.Len() > 0 {
		creditor, _ := heap.Pop(creditors).(Party)

		amount := creditor.Amount.Round(moneyPlaces)
		if amount.IsPositive() {
			transactions = append(transactions, Transaction{
				Payer:     last.Payer,
				Recipient: creditor.Name,
				Amount:    amount,
			})
		}
	}

	return transactions
}

// reconcile replays the transactions against the sheet and fails if any
// participant is left with a residual beyond a cent.
func reconcile(sheet BalanceSheet, transactions []Transaction) error {
	for name, residual := range Replay(sheet, transactions) {
		if residual.Abs().GreaterThan(centTolerance) {
			return NewDomainError(ErrorReconciliation, "balances",
				"participant "+name+" left with unsettled residual "+residual.String())
		}
	}

	return nil
}

// partyHeap is a max-heap of parties ordered by magnitude descending with
// lexicographic name ascending as the deterministic secondary key.
type partyHeap []Party

func (h partyHeap) Len() int { return len(h) }

func (h partyHeap) Less(i, j int) bool {
	if !h[i].Amount.Equal(h[j].Amount) {
		return h[i].Amount.GreaterThan(h[j].Amount)
	}

	return h[i].Name < h[j].Name
}

func (h partyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *partyHeap) Push(x any) {
	party, _ := x.(Party)
	*h = append(*h, party)
}

func (h *partyHeap) Pop() any {
	old := *h
	n := len(old)
	party := old[n-1]
	*h = old[:n-1]

	return party
}
