package configs

import "net/url"

// Store holds configuration for the remote campaign store. The store is a
// generic JSON-document collection reachable over HTTP; campaigns live at
// {BaseURL}/{Collection} and {BaseURL}/{Collection}/{id}.
type Store struct {
	// BaseURL is the root of the hosted document store, e.g.
	// https://crudcrud.com/api/<account-id>.
	BaseURL url.URL `env:"BASE_URL" envDefault:"http://localhost:8090"`
	// Collection is the name of the campaign collection resource.
	Collection string `env:"COLLECTION" envDefault:"campaigns"`
	// Embedded starts an in-process document store on BaseURL's port and
	// points the repository at it. Intended for local development where no
	// hosted store account is available.
	Embedded bool `env:"EMBEDDED" envDefault:"false"`
	// Seed inserts demo campaigns on startup when the collection is empty.
	// Only honoured by main.
	Seed bool `env:"SEED" envDefault:"false"`
}
