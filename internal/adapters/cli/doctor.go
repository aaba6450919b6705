package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the access token, API reachability and the circuit breaker",
		Args:  cobra.NoArgs,
		RunE: runE(func(cmd *cobra.Command, s *session, _ []string) error {
			results := s.deps.Health.CheckAll(cmd.Context())

			report := make(map[string]string, len(results))
			failed := 0
			for name, err := range results {
				if err != nil {
					report[name] = err.Error()
					failed++
					continue
				}
				report[name] = "ok"
			}

			if err := s.printer.print(report); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		}),
	}
}
