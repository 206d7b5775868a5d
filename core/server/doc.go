// Package server provides an HTTP server with eager binding and graceful
// shutdown.
//
// New binds the TCP listener immediately, so configuration mistakes (taken
// port, bad address) surface as startup errors rather than after the process
// looks healthy:
//
//	srv, err := server.New("127.0.0.1:8080", server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer srv.Stop()
//
//	if err := srv.Start(ctx, routes); err != nil {
//		return err
//	}
//
// # Environment Configuration
//
// NewFromConfig builds a server from a Config struct populated by the config
// loader:
//
//	cfg := config.MustLoad[server.Config]()
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//
// # Errgroup Lifecycle
//
// Run returns a closure for coordinated shutdown alongside other components:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, routes))
//	g.Go(otherComponent.Run(ctx))
//	return g.Wait()
package server
