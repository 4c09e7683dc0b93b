/* Copyright 2026 Libris Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/libris/libris/pkg/clock"
	"github.com/libris/libris/pkg/server/app"
	"github.com/libris/libris/pkg/server/buildinfo"
	"github.com/libris/libris/pkg/server/config"
	"github.com/libris/libris/pkg/server/controllers"
	"github.com/libris/libris/pkg/server/event"
	"github.com/libris/libris/pkg/server/log"
	"github.com/libris/libris/pkg/server/store"
)

func initApp(cfg config.Config) app.App {
	c := clock.New()

	return app.App{
		Store:               store.New(),
		Clock:               c,
		Events:              event.NewSubject(c),
		DisableRegistration: cfg.DisableRegistration,
	}
}

func newStartCmd() *cobra.Command {
	var appEnv string
	var port string
	var logLevel string
	var disableRegistration bool
	var skipSeed bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// missing .env is fine; the environment still applies
			godotenv.Load()

			cfg, err := config.New(config.Params{
				AppEnv:              appEnv,
				Port:                port,
				LogLevel:            logLevel,
				DisableRegistration: disableRegistration,
				SkipSeed:            skipSeed,
			})
			if err != nil {
				printError("invalid configuration: %s", err)
				return errors.Wrap(err, "constructing config")
			}

			log.SetLevel(cfg.LogLevel)

			a := initApp(cfg)
			a.Events.Subscribe(event.LogObserver{})
			a.Events.Subscribe(event.EmailObserver{})

			if !cfg.SkipSeed {
				if err := a.Seed(); err != nil {
					return errors.Wrap(err, "seeding catalog")
				}
				printInfo("seeded the initial catalog and the bootstrap admin account")
			}

			ctl := controllers.New(&a)
			r, err := controllers.NewRouter(&a, controllers.RouteConfig{Controllers: ctl})
			if err != nil {
				return errors.Wrap(err, "initializing router")
			}

			printSuccess("libris server %s listening on port %s", buildinfo.Version, cfg.Port)
			log.WithFields(log.Fields{
				"version": buildinfo.Version,
				"port":    cfg.Port,
			}).Info("Libris server starting")

			if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
				log.ErrorWrap(err, "server failed")
				return errors.Wrap(err, "serving")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&appEnv, "appEnv", "", "Application environment (env: APP_ENV, default: PRODUCTION)")
	cmd.Flags().StringVar(&port, "port", "", "Server port (env: PORT, default: 3001)")
	cmd.Flags().StringVar(&logLevel, "logLevel", "", "Log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")
	cmd.Flags().BoolVar(&disableRegistration, "disableRegistration", false, "Disable user registration (env: DisableRegistration, default: false)")
	cmd.Flags().BoolVar(&skipSeed, "skipSeed", false, "Skip seeding the initial catalog (env: SkipSeed, default: false)")

	return cmd
}
