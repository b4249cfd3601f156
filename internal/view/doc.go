// Package view renders the match schedule page.
//
// A page load walks a FetchState from Loading to exactly one terminal state,
// splits the loaded matches into the Today and Upcoming tabs and formats each
// match as a Card. Both tabs are computed independently, so a match later
// today is listed in both.
package view
