// Package session persists the signed-in user.
//
// The user is stored as a JSON object under a single key ("<prefix>user")
// of a kv.Store. An absent key means nobody is signed in.
//
// Typical Usage
//
//	repo := session.NewKVRepository(store, "mindful_")
//	_ = repo.Save(ctx, models.NewUser("ana@uni.edu"))
//	u, _ := repo.Load(ctx) // nil when signed out
//	_ = repo.Clear(ctx)
package session
