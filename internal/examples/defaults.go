package examples

import "github.com/custodia-labs/solidkit/internal/core/domain"

// RegisterDefaults registers all fourteen built-in examples.
func RegisterDefaults(r *Registry) {
	for _, d := range defaults {
		r.Register(d.example, d.run)
	}
}

var defaults = []struct {
	example domain.Example
	run     RunFunc
}{
	{
		example: domain.Example{
			Principle: domain.PrincipleSingleResponsibility,
			Variant:   domain.VariantGood,
			Title:     "Invoice service composed of focused collaborators",
			Summary:   "Validation, persistence and notification each sit behind their own interface; the service only sequences them.",
			Notes: []string{
				"Each type has one reason to change",
				"Collaborators are replaced or tested in isolation",
				"An invalid invoice is rejected before anything is saved or sent",
			},
		},
		run: runSRPGood,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleSingleResponsibility,
			Variant:   domain.VariantBad,
			Title:     "Invoice processor doing everything",
			Summary:   "One type validates, writes to the database, emails the customer and logs.",
			Notes: []string{
				"Business rules, persistence, email and logging change for different reasons",
				"No step can be swapped or tested alone",
			},
		},
		run: runSRPBad,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleOpenClosed,
			Variant:   domain.VariantGood,
			Title:     "Fee strategies selected by payment method",
			Summary:   "The processor looks the strategy up by tag; a new method is a new strategy, not an edit.",
			Notes: []string{
				"The processor stays unchanged when methods are added",
				"Each strategy has a single responsibility",
				"Strategies are easy to test independently",
			},
		},
		run: runOCPGood,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleOpenClosed,
			Variant:   domain.VariantBad,
			Title:     "Fee calculation as an if-chain",
			Summary:   "Every payment method is a branch in the same function.",
			Notes: []string{
				"Adding a payment method requires modifying the processor",
				"Existing branches are at risk of regression",
			},
		},
		run: runOCPBad,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleLiskovSubstitution,
			Variant:   domain.VariantGood,
			Title:     "Flying as a separate capability",
			Summary:   "Every bird moves; only birds that fly implement FlyingBird, so a penguin cannot be asked to fly.",
			Notes: []string{
				"No run-time surprises",
				"Behavioural contracts are honest",
				"The compiler enforces substitutability",
			},
		},
		run: runLSPGood,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleLiskovSubstitution,
			Variant:   domain.VariantBad,
			Title:     "Every bird must fly",
			Summary:   "The bird interface promises flight and the penguin fails at run time.",
			Notes: []string{
				"The abstraction promises behaviour not all implementations have",
				"The program compiles but fails when run",
				"Polymorphism becomes unsafe",
			},
		},
		run: runLSPBad,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleInterfaceSegregation,
			Variant:   domain.VariantGood,
			Title:     "Role interfaces for users",
			Summary:   "Reading, writing, notifying and reporting are separate interfaces; the profile reader needs only UserReader.",
			Notes: []string{
				"Clients depend only on what they use",
				"Changes to reporting or email stay isolated",
				"Test doubles stay small",
			},
		},
		run: runISPGood,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleInterfaceSegregation,
			Variant:   domain.VariantBad,
			Title:     "One fat user service",
			Summary:   "CRUD, password emails and monthly reports share one interface that every client must accept.",
			Notes: []string{
				"Clients depend on methods they never call",
				"Reporting or email changes affect every consumer",
				"Tests must stub irrelevant methods",
			},
		},
		run: runISPBad,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleDependencyInversion,
			Variant:   domain.VariantGood,
			Title:     "Order service over a repository interface",
			Summary:   "The service receives an OrderRepository; the same code runs against a simulated SQL store and an in-memory one.",
			Notes: []string{
				"Business logic depends only on abstractions",
				"Infrastructure changes without touching the service",
				"Unit tests use fakes instead of a database",
			},
		},
		run: runDIPGood,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleDependencyInversion,
			Variant:   domain.VariantBad,
			Title:     "Order service building its own SQL repository",
			Summary:   "The service constructs the concrete store itself.",
			Notes: []string{
				"Business logic depends on concrete infrastructure",
				"It cannot be tested without the database",
				"Changing persistence changes business code",
			},
		},
		run: runDIPBad,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleKISSYAGNI,
			Variant:   domain.VariantGood,
			Title:     "A message service that just sends",
			Summary:   "One format and one channel, written directly.",
			Notes: []string{
				"Easy to read",
				"No abstractions without a second implementation",
				"Easy to refactor when a second channel really appears",
			},
		},
		run: runKISSGood,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleKISSYAGNI,
			Variant:   domain.VariantBad,
			Title:     "Formatter and sender interfaces with one implementation each",
			Summary:   "Speculative flexibility: two interfaces and their wiring for a single behaviour.",
			Notes: []string{
				"Only one format and one delivery mechanism exist",
				"Indirection adds files and wiring without value",
			},
		},
		run: runKISSBad,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleDRY,
			Variant:   domain.VariantGood,
			Title:     "Explicit discount rules",
			Summary:   "Four small rules that look alike stay separate; the service sums them.",
			Notes: []string{
				"Business knowledge is explicit and discoverable",
				"Rules evolve independently",
				"New rules are added without editing existing ones",
			},
		},
		run: runDRYGood,
	},
	{
		example: domain.Example{
			Principle: domain.PrincipleDRY,
			Variant:   domain.VariantBad,
			Title:     "One flag-driven discount function",
			Summary:   "Similar-looking rules merged into a parameterised function; the rules now live in call-site flags.",
			Notes: []string{
				"Rules are hidden in parameter soup",
				"Changing one rule risks the others",
				"A forgotten flag silently changes behaviour",
			},
		},
		run: runDRYBad,
	},
}
