package fs_test

import (
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/archaicfs/internal/errors"
	"github.com/rwx-research/archaicfs/internal/fs"
)

var _ = Describe("Local", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "session.yml"), []byte("steps: []\n"), 0o644)).To(Succeed())
		Expect(os.Mkdir(filepath.Join(dir, "nested"), 0o755)).To(Succeed())
	})

	It("opens files", func() {
		fd, err := fs.Local{}.Open(filepath.Join(dir, "session.yml"))
		Expect(err).NotTo(HaveOccurred())
		defer fd.Close()

		contents, err := io.ReadAll(fd)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(contents)).To(Equal("steps: []\n"))
	})

	It("lists and stats entries", func() {
		entries, err := fs.Local{}.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(2))

		info, err := fs.Local{}.Stat(filepath.Join(dir, "nested"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("keeps not-exist errors matchable", func() {
		_, err := fs.Local{}.Stat(filepath.Join(dir, "missing"))
		Expect(errors.Is(err, errors.ErrFileNotExists)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("unable to stat"))
	})
})
