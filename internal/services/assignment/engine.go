package assignment

// Engine wires Resolver, Validator and Writer into the two sanctioned call
// patterns: AssignMany for the interactive path and RunBulk for spreadsheet
// uploads. Both run resolve -> validate -> write per entity, and neither
// aborts on a single entity's failure.
type Engine struct {
	resolver  *Resolver
	validator *Validator
	writer    *Writer
}

func NewEngine(
	campaigns CampaignStore,
	retailers RetailerStore,
	employees EmployeeStore,
	entries EntryStore,
	events EventPublisher,
) *Engine {
	return &Engine{
		resolver:  NewResolver(campaigns, retailers, employees),
		validator: NewValidator(entries),
		writer:    NewWriter(entries, events),
	}
}

// Resolver exposes the identifier resolver for read-only callers (listing
// handlers that need the same lookup semantics)
func (e *Engine) Resolver() *Resolver {
	return e.resolver
}
