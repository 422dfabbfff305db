// Package registry installs a package into a colcon workspace's ament
// resource index. Registration writes an empty marker file under
// share/ament_index/resource_index and copies the package's package.xml
// next to it in the install tree. A marker is never left behind without its
// manifest: if the copy fails the marker is removed again, and a failure to
// remove it is reported as a CleanupError.
package registry
