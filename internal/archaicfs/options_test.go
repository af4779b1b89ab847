package archaicfs_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/archaicfs/internal/archaicfs"
)

var _ = Describe("WriteOptions", func() {
	Describe("Validate", func() {
		It("accepts a single mutation mode with any one existence policy", func() {
			Expect(archaicfs.Truncate.Validate()).To(Succeed())
			Expect(archaicfs.Append.Validate()).To(Succeed())
			Expect((archaicfs.Create | archaicfs.Truncate).Validate()).To(Succeed())
			Expect((archaicfs.CreateIfNotExists | archaicfs.Append).Validate()).To(Succeed())
		})

		It("rejects a missing mutation mode", func() {
			Expect(archaicfs.Create.Validate()).To(MatchError(archaicfs.ErrInvalidArgument))
			Expect(archaicfs.WriteOptions(0).Validate()).To(MatchError(archaicfs.ErrInvalidArgument))
		})

		It("rejects both mutation modes", func() {
			err := (archaicfs.Truncate | archaicfs.Append).Validate()
			Expect(err).To(MatchError(archaicfs.ErrInvalidArgument))
			Expect(err.Error()).To(ContainSubstring("exactly one of truncate or append"))
		})

		It("rejects both existence policies", func() {
			err := (archaicfs.Create | archaicfs.CreateIfNotExists | archaicfs.Truncate).Validate()
			Expect(err).To(MatchError(archaicfs.ErrInvalidArgument))
			Expect(err.Error()).To(ContainSubstring("mutually exclusive"))
		})
	})

	Describe("ParseWriteOptions", func() {
		It("combines names into a set", func() {
			options, err := archaicfs.ParseWriteOptions([]string{"CREATE_IF_NOT_EXISTS", "append"})
			Expect(err).NotTo(HaveOccurred())
			Expect(options).To(Equal(archaicfs.CreateIfNotExists | archaicfs.Append))
			Expect(options.String()).To(Equal("create-if-not-exists,append"))
		})

		It("rejects unknown names", func() {
			_, err := archaicfs.ParseWriteOptions([]string{"truncate", "sync"})
			Expect(err).To(MatchError(archaicfs.ErrInvalidArgument))
		})
	})
})
