/*
Package qsgen builds query strings for Lucene/Solr style query parsers.

Values, groups, fields and ranges are appended to a Query, each rendered
according to a Modifier, and the result is read back with String:

    q := qsgen.New()
    m := qsgen.Start().Required().Wildcarded(true).MustBuild()
    q.AddField("brand", "adidas", m)
    q.AddGroup([]any{"red", "blue"}, qsgen.Start().Disjunct().MustBuild())
    fmt.Println(q) // +brand:(("adidas"^2 adidas*) ) (red blue)

Everything added is escaped, so user input can be passed straight in.

A Builder wraps a Query and can be locked, after which it only serves as a
template for new queries:

    tmpl := qsgen.NewBuilder().AddField("type", "shoe", qsgen.Mandatory(true)).Lock()
    q := tmpl.Build()
    q.Add("adidas")

*/
package qsgen
