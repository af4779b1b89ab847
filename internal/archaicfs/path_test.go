package archaicfs_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/archaicfs/internal/archaicfs"
)

var _ = Describe("Resolve", func() {
	It("starts absolute paths at the root", func() {
		Expect(archaicfs.Resolve("/usr/bin", []string{"home"})).To(Equal([]string{"usr", "bin"}))
	})

	It("starts relative paths at the working directory", func() {
		Expect(archaicfs.Resolve("bin", []string{"usr"})).To(Equal([]string{"usr", "bin"}))
	})

	It("drops empty and current-directory segments", func() {
		Expect(archaicfs.Resolve("//usr/./bin//", nil)).To(Equal([]string{"usr", "bin"}))
		Expect(archaicfs.Resolve(".", []string{"usr"})).To(Equal([]string{"usr"}))
	})

	It("pops a segment for each parent reference", func() {
		Expect(archaicfs.Resolve("../bin/..", []string{"usr", "bin"})).To(Equal([]string{"usr"}))
	})

	It("clamps parent references at the root", func() {
		Expect(archaicfs.Resolve("../../../..", []string{"usr"})).To(BeEmpty())
		Expect(archaicfs.Resolve("/../usr", nil)).To(Equal([]string{"usr"}))
	})

	It("does not modify the working directory it is given", func() {
		cwd := []string{"usr", "bin"}
		_ = archaicfs.Resolve("..", cwd)
		_ = archaicfs.Resolve("lib", cwd)
		Expect(cwd).To(Equal([]string{"usr", "bin"}))
	})
})

var _ = Describe("Join", func() {
	It("renders the root as an empty string", func() {
		Expect(archaicfs.Join(nil)).To(Equal(""))
	})

	It("prefixes every segment with the separator", func() {
		Expect(archaicfs.Join([]string{"usr", "bin"})).To(Equal("/usr/bin"))
	})
})

var _ = Describe("Normalize", func() {
	It("resolves against the root", func() {
		Expect(archaicfs.Normalize("usr//a/./b/../c")).To(Equal("/usr/a/c"))
		Expect(archaicfs.Normalize("/..")).To(Equal(""))
	})
})
