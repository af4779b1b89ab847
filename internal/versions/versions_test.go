package versions_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/archaicfs/internal/versions"
)

var _ = Describe("versions", func() {
	// Tests build without ldflags, so the version is the development default.
	It("treats unversioned builds as newer than any release", func() {
		Expect(versions.IsDevelopmentBuild()).To(BeTrue())
		Expect(versions.GetCliCurrentVersion().Major()).To(Equal(uint64(9999)))
		Expect(versions.GetCliCurrentVersion().Metadata()).To(Equal("dev"))
	})

	It("checks requirements against the current version", func() {
		ok, err := versions.Satisfies(">= 0.1.0")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())

		ok, err = versions.Satisfies("< 1.0.0")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("errors for malformed requirements", func() {
		_, err := versions.Satisfies("not a version")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`invalid version requirement "not a version"`))
	})
})
