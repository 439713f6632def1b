// main.go
//
// A Go data service for the Enxoval Missionário donation registry
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of enxovaldb.
// enxovaldb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// enxovaldb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with enxovaldb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/logger"
	"github.com/localnerve/enxovaldb/internal/services"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/localnerve/enxovaldb/internal/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Keep stdout for the JSON result
	log := logger.Discard()

	result := services.HealthCheckResult{Status: "healthy", Details: map[string]string{}}
	if err := utils.PingService(cfg.Port, utils.DefaultPingTimeout); err != nil {
		result.Status = "unhealthy"
		result.ErrorMessage = fmt.Sprintf("Server not listening: %v", err)
	} else {
		docs, err := store.Open(cfg, log)
		if err != nil {
			result.Status = "unhealthy"
			result.Store = "unreachable"
			result.ErrorMessage = fmt.Sprintf("Failed to open document store: %v", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			result = services.HealthCheck(ctx, cfg, docs, log)
			cancel()
			docs.Close()
		}
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logrus.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if !result.Healthy() {
		os.Exit(1)
	}
	os.Exit(0)
}
