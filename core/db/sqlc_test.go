package db_test

import (
	"os"
	"reflect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/FutureNHS/futurenhs-platform/core/db/sqlc"
)

var _ = Describe("generated queries", func() {
	It("match the sqlc configuration", func() {
		cfg, err := os.ReadFile("../../sqlc.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(cfg)).To(ContainSubstring("emit_json_tags: true"))
		Expect(string(cfg)).To(ContainSubstring("emit_empty_slices: true"))

		for _, row := range []any{sqlc.User{}, sqlc.Team{}, sqlc.TeamMember{}, sqlc.Workspace{}} {
			typ := reflect.TypeOf(row)
			for i := range typ.NumField() {
				Expect(typ.Field(i).Tag.Get("json")).NotTo(BeEmpty(), "%s.%s", typ.Name(), typ.Field(i).Name)
			}
		}
	})
})
