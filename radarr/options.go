package radarr

// Option configures which library movies a Client reports.
type Option func(*clientOptions)

type clientOptions struct {
	downloadedOnly bool
	monitoredOnly  bool
	tag            string
}

// WithDownloadedOnly limits the source to movies that have a file on disk.
func WithDownloadedOnly() Option {
	return func(o *clientOptions) {
		o.downloadedOnly = true
	}
}

// WithMonitoredOnly limits the source to monitored movies.
func WithMonitoredOnly() Option {
	return func(o *clientOptions) {
		o.monitoredOnly = true
	}
}

// WithTag limits the source to movies carrying the named Radarr tag.
func WithTag(label string) Option {
	return func(o *clientOptions) {
		o.tag = label
	}
}
