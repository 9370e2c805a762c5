package y2020

import "testing"

const day01Sample = "1721\n979\n366\n299\n675\n1456\n"

func TestExpensePairProduct(t *testing.T) {
	got, err := expensePairProduct(day01Sample)
	if err != nil {
		t.Fatalf("expensePairProduct() error = %v", err)
	}
	// 1721 * 299
	if got != "514579" {
		t.Errorf("expensePairProduct() = %v, want 514579", got)
	}
}

func TestExpenseTripleProduct(t *testing.T) {
	got, err := expenseTripleProduct(day01Sample)
	if err != nil {
		t.Fatalf("expenseTripleProduct() error = %v", err)
	}
	// 979 * 366 * 675
	if got != "241861950" {
		t.Errorf("expenseTripleProduct() = %v, want 241861950", got)
	}
}

func TestExpensePairProductNoSolution(t *testing.T) {
	if _, err := expensePairProduct("1\n2\n3\n"); err == nil {
		t.Error("expected error when no pair sums to 2020")
	}
}
