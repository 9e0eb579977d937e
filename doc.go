// Package appshell builds the root of a server-rendered application.
//
// A Root composes the two providers every page needs around the page
// content: the application store and the router. The store is built once,
// when the Root is created, and every render reuses it.
//
//	r := router.New()
//	demo.Routes(r)
//
//	root, err := appshell.NewRoot(demo.ConfigureStore, r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tree := root.Render(router.Outlet())
//
// The tree has a fixed shape:
//
//	store provider
//	└── router provider
//	    └── <div class="App">
//	        └── children...
//
// Descendants reach the store with store.FromEnv and the current match with
// router.UseMatch.
package appshell
