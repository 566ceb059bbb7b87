// Package composite shows the Composite pattern with a file system tree:
// files and directories answer the same questions (Name, Size, PrintList),
// so a caller never needs to know which one it holds.
//
// Renditions:
//
//   - Entry (interface), implemented by *FileEntry and *DirEntry.
//     DirEntry.Add returns the directory so a tree can be built in one
//     expression. Size of a directory is the recursive sum of its entries.
//   - Node (closed): one struct tagged KindFile or KindDirectory. AsDirectory
//     narrows a Node to a directory; Add on a file reports ErrAddToFile.
//   - GenericDirectory[E]: a homogeneous directory whose children all share
//     one concrete Entry type.
//
// PrintList output for the classic tree:
//
//	/root (30000)
//	/root/bin (30000)
//	/root/bin/vi (10000)
//	/root/bin/latex (20000)
//	/root/tmp (0)
//	/root/usr (0)
//
// DirEntry.Add keeps the first rejected argument (nil entry, cycle) and
// reports it from Err, in the style of bufio.Scanner, so that chained calls
// stay readable.
package composite
