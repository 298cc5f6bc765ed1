// Package appraisal is a small data-access layer for employee performance
// reviews.
//
// Open connects to the configured database and returns an App holding two
// repositories. Employees are plain rows; reviews are validated on
// construction and mutation and resolved through an identity map, so each
// stored review is represented by at most one *entity.Review at a time.
//
//	app, err := appraisal.Open(ctx, database.DefaultConfig())
//	if err != nil { ... }
//	defer app.Close()
//
//	ada, _ := app.Employees.Create(ctx, "Ada", "Engineer")
//	review, err := app.Reviews.Create(ctx, 2021, "Good work", ada.ID)
package appraisal
