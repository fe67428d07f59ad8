package handler

import (
	"context"
	"log"
	"net/http"
	"regexp"

	"github.com/bekabe-press/api/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ddmmyyyy matches the date format the search box accepts; a match is
// converted to the ISO form stored in the date column.
var ddmmyyyy = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// ExpenseStore defines the database methods needed by ExpenseHandler.
// Satisfied by *database.Queries; narrow interface for testability.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, arg database.CreateExpenseParams) (database.Expense, error)
	SearchExpenses(ctx context.Context, arg database.SearchExpensesParams) ([]database.Expense, error)
	ListExpensesByDateDesc(ctx context.Context) ([]database.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}

// ExpenseHandler handles expense entry, search and history pages.
type ExpenseHandler struct {
	store ExpenseStore
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(store ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{store: store}
}

// RegisterRoutes registers the expense endpoints to the router.
func (h *ExpenseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/expenses", h.Expenses)
	r.Post("/expenses", h.AddExpense)
	r.Get("/expense_history", h.ExpenseHistory)
	r.Post("/delete_expense/{id}", h.DeleteExpense)
}

type expenseView struct {
	ID          int64
	Amount      string
	Description string
	Date        string
}

type expensesPageData struct {
	Expenses  []expenseView
	Search    string
	StartDate string
	EndDate   string
	Flash     string
}

// Expenses renders the expense list filtered by the search box and the
// optional date range. A search term of the form DD/MM/YYYY filters on
// that exact date; anything else matches as a description substring.
func (h *ExpenseHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	params := database.SearchExpensesParams{
		StartDate: startDate,
		EndDate:   endDate,
	}
	if m := ddmmyyyy.FindStringSubmatch(search); m != nil {
		params.ExactDate = m[3] + "-" + m[2] + "-" + m[1]
	} else {
		params.Search = search
	}

	expenses, err := h.store.SearchExpenses(r.Context(), params)
	if err != nil {
		log.Printf("ERROR: search expenses: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "expenses.html", expensesPageData{
		Expenses:  toExpenseViews(expenses),
		Search:    search,
		StartDate: startDate,
		EndDate:   endDate,
		Flash:     popFlash(w, r),
	})
}

// AddExpense records an expense from the form.
func (h *ExpenseHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission")
		http.Redirect(w, r, "/expenses", http.StatusFound)
		return
	}
	amount, err := decimal.NewFromString(r.PostFormValue("amount"))
	if err != nil {
		setFlash(w, "Invalid amount")
		http.Redirect(w, r, "/expenses", http.StatusFound)
		return
	}
	var numericAmount pgtype.Numeric
	if err := numericAmount.Scan(amount.String()); err != nil {
		setFlash(w, "Invalid amount")
		http.Redirect(w, r, "/expenses", http.StatusFound)
		return
	}
	_, err = h.store.CreateExpense(r.Context(), database.CreateExpenseParams{
		Amount:      numericAmount,
		Description: r.PostFormValue("description"),
		Date:        r.PostFormValue("date"),
	})
	if err != nil {
		log.Printf("ERROR: create expense: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/expenses", http.StatusFound)
}

// ExpenseHistory lists every expense, newest date first.
func (h *ExpenseHandler) ExpenseHistory(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.store.ListExpensesByDateDesc(r.Context())
	if err != nil {
		log.Printf("ERROR: list expense history: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "expense_history.html", expensesPageData{
		Expenses: toExpenseViews(expenses),
		Flash:    popFlash(w, r),
	})
}

// DeleteExpense removes an expense record.
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "Expense not found")
		http.Redirect(w, r, "/expenses", http.StatusFound)
		return
	}
	if err := h.store.DeleteExpense(r.Context(), id); err != nil {
		log.Printf("ERROR: delete expense: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/expenses", http.StatusFound)
}

func toExpenseViews(expenses []database.Expense) []expenseView {
	views := make([]expenseView, len(expenses))
	for i, e := range expenses {
		views[i] = expenseView{
			ID:          e.ID,
			Amount:      numericToString(e.Amount),
			Description: e.Description,
			Date:        e.Date,
		}
	}
	return views
}
