package main

import "context"

// fetchCatalog runs one catalog fetch against the remote collaborator.
// Invocations are not deduplicated; phase completions are last-write-wins, so
// overlapping calls race harmlessly.
func (app *application) fetchCatalog() {
	app.store.Catalog.BeginFetch()

	ctx, cancel := context.WithTimeout(context.Background(), app.config.catalog.timeout)
	defer cancel()

	products, err := app.catalog.ListProducts(ctx)
	if err != nil {
		app.store.Catalog.FailFetch(err.Error())
		app.logger.Errorw("catalog fetch failed", "error", err)
		return
	}

	app.store.Catalog.CompleteFetch(products)
	app.logger.Infow("catalog fetched", "products", len(products))
}

func (app *application) fetchCatalogInBackground() {
	go app.fetchCatalog()
}
