package handlers

import (
	"github.com/pearlpotter/Billing-Software/internal/ai"
	"github.com/pearlpotter/Billing-Software/internal/billing"
	"github.com/pearlpotter/Billing-Software/internal/ledger"
)

// Shared collaborators, wired once at startup.
var (
	billEngine   *billing.Engine
	customerBook *ledger.Ledger
	aiAgent      *ai.Agent
)

// Init hands the handler package its collaborators. Must be called before
// the router starts serving.
func Init(engine *billing.Engine, book *ledger.Ledger, agent *ai.Agent) {
	billEngine = engine
	customerBook = book
	aiAgent = agent
}
