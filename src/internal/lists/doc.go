// Package lists downloads and parses published IP range lists.
//
// # Pipeline
//
//   - Downloader.Fetch: sequential HTTP(S) GET of every source, bodies joined with "\n"
//   - BuildList: split into lines, keep the entries accepted by ParseEntry
//   - ParseEntry: trim, strip ";" / "#" comments, validate the address part
//
// A list with fewer than MinEntries usable entries is rejected, so an empty
// or broken provider response never wipes firewall rules.
//
// # Example Usage
//
//	d := lists.NewDownloader(lists.DownloaderOptions{TimeoutSeconds: 30, VerifyTLS: true})
//	raw, err := d.Fetch(ctx, []string{"https://www.cloudflare.com/ips-v4"})
//	if err != nil {
//	    return err
//	}
//	ipList, err := lists.BuildList(raw)
package lists
